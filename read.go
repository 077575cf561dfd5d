package alnutil

import "github.com/biogo/hts/sam"

// Unmapped reports whether r is unmapped. SAM allows more than one way to
// mark a record unmapped: the flag is checked first, and the
// reference/alignment-start sentinels only count as mapped when both a
// valid reference and a valid start are present. Files written without a
// sequence dictionary can carry a reference name with no usable index, so
// neither sentinel is trusted on its own.
func Unmapped(r *sam.Record) bool {
	if r.Flags&sam.Unmapped != 0 {
		return true
	}
	if hasReference(r.Ref) && r.Pos >= 0 {
		return false
	}
	return true
}

// MateUnmapped is Unmapped for the record's mate.
func MateUnmapped(r *sam.Record) bool {
	if r.Flags&sam.MateUnmapped != 0 {
		return true
	}
	if hasReference(r.MateRef) && r.MatePos >= 0 {
		return false
	}
	return true
}

func hasReference(ref *sam.Reference) bool {
	if ref == nil {
		return false
	}
	if ref.ID() >= 0 {
		return true
	}
	return ref.Name() != "" && ref.Name() != "*"
}

// UniquelyMapped reports whether r is mapped with non-zero mapping quality.
func UniquelyMapped(r *sam.Record) bool {
	return !Unmapped(r) && r.MapQ > 0
}

// CycleQuals returns the base qualities in machine cycle order, always
// starting from read cycle 1. Mapped reverse strand reads get a reversed
// copy; unmapped and forward strand reads get the stored slice.
func CycleQuals(r *sam.Record) []byte {
	if Unmapped(r) || r.Flags&sam.Reverse == 0 {
		return r.Qual
	}
	q := make([]byte, len(r.Qual))
	for i, v := range r.Qual {
		q[len(q)-1-i] = v
	}
	return q
}
