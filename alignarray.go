package alnutil

import "github.com/biogo/hts/sam"

// DeletionBase marks an alignment-array slot covered by a deletion or skip.
var DeletionBase byte = '*'

// TagInsertion returns the alignment-array encoding of a base that is
// immediately followed by an insertion. A, C, G and T are stored as their
// lowercase form; anything else is left as is.
func TagInsertion(b byte) byte {
	switch b {
	case 'A', 'C', 'G', 'T':
		return b + 'a' - 'A'
	}
	return b
}

// UntagInsertion recovers the plain base from a TagInsertion slot.
func UntagInsertion(b byte) byte {
	switch b {
	case 'a', 'c', 'g', 't':
		return b - ('a' - 'A')
	}
	return b
}

// IsInsertionTagged reports whether an array slot was marked by TagInsertion.
func IsInsertionTagged(b byte) bool {
	switch b {
	case 'a', 'c', 'g', 't':
		return true
	}
	return false
}

// AlignmentArray projects read bases onto reference-relative slots, one slot
// per reference base the cigar consumes. Deleted and skipped positions hold
// DeletionBase; the base right before an insertion is stored tagged; an
// insertion before the first slot leaves nothing to tag. Soft clips advance
// the read without writing.
func AlignmentArray(c sam.Cigar, read []byte) ([]byte, error) {
	length := 0
	for _, co := range c {
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch, sam.CigarDeletion, sam.CigarSkipped:
			length += co.Len()
		case sam.CigarInsertion, sam.CigarSoftClipped, sam.CigarHardClipped, sam.CigarPadded:
		default:
			return nil, UnsupportedOpError{co.Type()}
		}
	}

	alignment := make([]byte, length)
	alignPos, readPos := 0, 0
	for _, co := range c {
		l := co.Len()
		switch co.Type() {
		case sam.CigarInsertion:
			if alignPos > 0 {
				alignment[alignPos-1] = TagInsertion(alignment[alignPos-1])
			}
			readPos += l
		case sam.CigarSoftClipped:
			readPos += l
		case sam.CigarDeletion, sam.CigarSkipped:
			for j := 0; j < l; j++ {
				alignment[alignPos] = DeletionBase
				alignPos++
			}
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			for j := 0; j < l; j++ {
				alignment[alignPos] = read[readPos]
				alignPos++
				readPos++
			}
		}
	}
	return alignment, nil
}
