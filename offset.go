package alnutil

import "github.com/biogo/hts/sam"

// AlignmentOffset converts a pileup/read offset into the equivalent offset
// within the alignment array built by AlignmentArray. insertionAtReadStart
// maps to 0: there is no prior aligned base to anchor to. For a deletion
// observation the target is reference-relative, refLocus-alignmentStart plus
// any leading soft clip, because deleted bases occupy array slots of their
// own. An insertion or clip boundary maps to the start of the following
// base. N elements advance neither cursor on this path.
func AlignmentOffset(c sam.Cigar, offset int, insertionAtReadStart, deletion bool, alignmentStart, refLocus int) (int, error) {
	if insertionAtReadStart {
		return 0, nil
	}

	target := offset
	if deletion {
		target = refLocus - alignmentStart
		if len(c) > 0 && c[0].Type() == sam.CigarSoftClipped {
			target += c[0].Len()
		}
	}

	var pos, alignmentPos int
	for _, co := range c {
		l := co.Len()
		switch co.Type() {
		case sam.CigarInsertion, sam.CigarSoftClipped:
			pos += l
			if pos >= target {
				return alignmentPos, nil
			}
		case sam.CigarDeletion:
			if !deletion {
				alignmentPos += l
			} else if pos+l-1 >= target {
				return alignmentPos + (target - pos), nil
			} else {
				pos += l
				alignmentPos += l
			}
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			if pos+l-1 >= target {
				return alignmentPos + (target - pos), nil
			}
			pos += l
			alignmentPos += l
		case sam.CigarHardClipped, sam.CigarPadded, sam.CigarSkipped:
		default:
			return 0, UnsupportedOpError{co.Type()}
		}
	}
	return alignmentPos, nil
}

// ElementOffset is AlignmentOffset anchored at a pileup element.
func ElementOffset(e PileupElement, refLocus int) (int, error) {
	return AlignmentOffset(e.Read.Cigar, e.Offset, e.InsertionAtReadStart, e.Deletion, e.Read.Pos, refLocus)
}
