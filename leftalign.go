package alnutil

import (
	"bytes"

	"github.com/biogo/hts/sam"
)

// LeftAlignIndel canonicalizes the position of the single indel in c by
// shifting it left one base at a time for as long as the sequence the
// alignment spells out stays byte-identical, so that independent reads
// carrying the same indel converge on the same cigar. ref and read hold the
// reference and read bases; refIndex and readIndex are the 0-based positions
// where the cigar starts on each. A cigar with no indel, with more than one
// indel, or with a leading indel is returned unchanged.
func LeftAlignIndel(c sam.Cigar, ref, read []byte, refIndex, readIndex int) sam.Cigar {
	indel := -1
	for i, co := range c {
		if t := co.Type(); t == sam.CigarDeletion || t == sam.CigarInsertion {
			if indel != -1 {
				// more than one indel: placement is ambiguous, never guess
				return c
			}
			indel = i
		}
	}
	if indel < 1 {
		return c
	}

	indelLength := c[indel].Len()
	want, ok := indelSequence(c, indel, ref, read, refIndex, readIndex)
	if !ok {
		return c
	}

	// Candidates keep moving left even past rejected positions: in a
	// dinucleotide repeat every other position spells the same sequence.
	// Each accepted shift resets the attempt budget of indelLength tries.
	result := c
	candidate := c
	for attempt := 0; attempt < indelLength; attempt++ {
		candidate = moveIndelLeft(candidate, indel)
		got, ok := indelSequence(candidate, indel, ref, read, refIndex, readIndex)

		// A zero-length element means the shift ran off the start of the read.
		hitEnd := hasZeroLengthElement(candidate)

		if ok && bytes.Equal(want, got) {
			result = candidate
			attempt = -1
			if hitEnd {
				result = dropEmptyElements(result)
			}
		}
		if hitEnd {
			break
		}
	}
	return result
}

// moveIndelLeft builds a copy of c with the indel at idx shifted one base
// left: the preceding element shrinks by one and the following element grows
// by one, with a synthetic 1M appended when the indel is the last element.
func moveIndelLeft(c sam.Cigar, idx int) sam.Cigar {
	out := make(sam.Cigar, 0, len(c)+1)
	out = append(out, c[:idx-1]...)

	prev := c[idx-1]
	out = append(out, sam.NewCigarOp(prev.Type(), prev.Len()-1))
	out = append(out, c[idx])
	if idx+1 < len(c) {
		next := c[idx+1]
		out = append(out, sam.NewCigarOp(next.Type(), next.Len()+1))
	} else {
		out = append(out, sam.NewCigarOp(sam.CigarMatch, 1))
	}

	if idx+2 <= len(c) {
		out = append(out, c[idx+2:]...)
	}
	return out
}

// indelSequence reconstructs the sequence the alignment spells out when the
// indel at idx is applied to ref: the reference with the deleted bases
// removed, or with the inserted read bases spliced in. It reports false when
// the alignment would run off the reference.
func indelSequence(c sam.Cigar, idx int, ref, read []byte, refIndex, readIndex int) ([]byte, bool) {
	indel := c[idx]
	indelLength := indel.Len()

	totalRefBases := 0
	for _, co := range c[:idx] {
		l := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			readIndex += l
			refIndex += l
			totalRefBases += l
		case sam.CigarSoftClipped:
			readIndex += l
		case sam.CigarSkipped:
			refIndex += l
			totalRefBases += l
		}
	}

	// very large known indels can reach past the reference we were given
	if totalRefBases+indelLength > len(ref) {
		indelLength -= totalRefBases + indelLength - len(ref)
	}

	size := len(ref) + indelLength
	if indel.Type() == sam.CigarDeletion {
		size = len(ref) - indelLength
	}
	alt := make([]byte, size)

	if refIndex > len(alt) || refIndex > len(ref) {
		return nil, false
	}
	copy(alt, ref[:refIndex])
	currentPos := refIndex

	if indel.Type() == sam.CigarDeletion {
		refIndex += indelLength
	} else {
		copy(alt[currentPos:], read[readIndex:readIndex+indelLength])
		currentPos += indelLength
	}

	if len(ref)-refIndex > len(alt)-currentPos {
		return nil, false
	}
	copy(alt[currentPos:], ref[refIndex:])

	return alt, true
}
