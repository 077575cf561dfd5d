// Package alnutil provides coordinate algebra over CIGAR-described
// alignments: read/reference/alignment-array offset mapping, mismatch
// counting, alignment shape metrics and indel left-alignment.
package alnutil

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// UnsupportedOpError reports a cigar operation outside the nine operators
// this package understands (M, I, D, N, S, H, P, =, X). Well-formed
// alignments never trigger it.
type UnsupportedOpError struct {
	Op sam.CigarOpType
}

func (e UnsupportedOpError) Error() string {
	return fmt.Sprintf("alnutil: unsupported cigar operation: %v", e.Op)
}

// PileupElement is a single read's observation at one reference position,
// as supplied by an external pileup builder. Offset is the position within
// the read bases; Deletion marks an observation inside a deletion and
// InsertionAtReadStart an insertion before the first aligned base.
type PileupElement struct {
	Read                 *sam.Record
	Offset               int
	Deletion             bool
	InsertionAtReadStart bool
}

// RefWindow is a contiguous slice of reference sequence. Start and Stop are
// the genomic bounds of Bases; Locus marks the site of interest used for
// target-site exclusion.
type RefWindow struct {
	Bases []byte
	Start int
	Stop  int
	Locus int
}

// HasIndel reports whether c contains at least one I or D element.
func HasIndel(c sam.Cigar) bool {
	for _, co := range c {
		if t := co.Type(); t == sam.CigarInsertion || t == sam.CigarDeletion {
			return true
		}
	}
	return false
}

func hasZeroLengthElement(c sam.Cigar) bool {
	for _, co := range c {
		if co.Len() == 0 {
			return true
		}
	}
	return false
}

// dropEmptyElements removes zero-length elements. A deletion is never left
// as the new leading element.
func dropEmptyElements(c sam.Cigar) sam.Cigar {
	out := make(sam.Cigar, 0, len(c))
	for _, co := range c {
		if co.Len() != 0 && (len(out) != 0 || co.Type() != sam.CigarDeletion) {
			out = append(out, co)
		}
	}
	return out
}
