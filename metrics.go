package alnutil

import "github.com/biogo/hts/sam"

// AlignmentBlocks returns the number of contiguous aligned stretches, i.e.
// the number of M elements in the cigar. Indel and clipping elements are
// ignored.
func AlignmentBlocks(c sam.Cigar) int {
	n := 0
	for _, co := range c {
		if co.Type() == sam.CigarMatch {
			n++
		}
	}
	return n
}

// AlignedBases returns the number of read bases covered by M elements.
func AlignedBases(c sam.Cigar) int {
	n := 0
	for _, co := range c {
		if co.Type() == sam.CigarMatch {
			n += co.Len()
		}
	}
	return n
}

// AlignedBasesWithSoftClips returns the number of read bases covered by M
// and S elements.
func AlignedBasesWithSoftClips(c sam.Cigar) int {
	n := 0
	for _, co := range c {
		if t := co.Type(); t == sam.CigarMatch || t == sam.CigarSoftClipped {
			n += co.Len()
		}
	}
	return n
}

// HardClippedBases returns the number of bases removed by H elements.
func HardClippedBases(c sam.Cigar) int {
	n := 0
	for _, co := range c {
		if co.Type() == sam.CigarHardClipped {
			n += co.Len()
		}
	}
	return n
}

// HighQualitySoftClips returns the number of soft clipped bases whose
// cycle-ordered base quality strictly exceeds qualThreshold.
func HighQualitySoftClips(r *sam.Record, qualThreshold byte) (int, error) {
	qual := CycleQuals(r)

	n, alignPos := 0, 0
	for _, co := range r.Cigar {
		l := co.Len()
		switch co.Type() {
		case sam.CigarSoftClipped:
			for j := 0; j < l; j++ {
				if qual[alignPos] > qualThreshold {
					n++
				}
				alignPos++
			}
		case sam.CigarMatch, sam.CigarInsertion, sam.CigarEqual, sam.CigarMismatch:
			alignPos += l
		case sam.CigarHardClipped, sam.CigarPadded, sam.CigarDeletion, sam.CigarSkipped:
		default:
			return 0, UnsupportedOpError{co.Type()}
		}
	}
	return n, nil
}
