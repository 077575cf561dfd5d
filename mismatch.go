package alnutil

import "github.com/biogo/hts/sam"

// MismatchCount holds the number of mismatching read bases and the sum of
// their base qualities.
type MismatchCount struct {
	Mismatches int
	QualSum    int
}

// Mismatches counts mismatches between the whole read and ref. refIndex is
// the offset of the alignment start within ref.
func Mismatches(r *sam.Record, ref []byte, refIndex int) (MismatchCount, error) {
	return MismatchesIn(r, ref, refIndex, 0, r.Seq.Length)
}

// MismatchQualities returns the summed base qualities of the mismatching
// read bases.
func MismatchQualities(r *sam.Record, ref []byte, refIndex int) (int, error) {
	mc, err := Mismatches(r, ref, refIndex)
	return mc.QualSum, err
}

// MismatchesIn counts mismatches restricted to read positions
// [startOnRead, startOnRead+nReadBases). X elements count every base as a
// mismatch, as SAM requires, with their qualities summed; = elements are
// skipped; M elements are compared byte for byte, skipping positions beyond
// the end of ref or outside the read window.
func MismatchesIn(r *sam.Record, ref []byte, refIndex, startOnRead, nReadBases int) (MismatchCount, error) {
	var mc MismatchCount
	readIdx := 0
	endOnRead := startOnRead + nReadBases - 1
	read := r.Seq.Expand()

	for _, co := range r.Cigar {
		if readIdx > endOnRead {
			break
		}
		l := co.Len()
		switch co.Type() {
		case sam.CigarMismatch:
			mc.Mismatches += l
			for j := 0; j < l; j++ {
				mc.QualSum += int(r.Qual[readIdx+j])
			}
			refIndex += l
			readIdx += l
		case sam.CigarEqual:
			refIndex += l
			readIdx += l
		case sam.CigarMatch:
			for j := 0; j < l; j, refIndex, readIdx = j+1, refIndex+1, readIdx+1 {
				if refIndex >= len(ref) {
					continue
				}
				if readIdx < startOnRead {
					continue
				}
				if readIdx > endOnRead {
					break
				}
				if read[readIdx] != ref[refIndex] {
					mc.Mismatches++
					mc.QualSum += int(r.Qual[readIdx])
				}
			}
		case sam.CigarInsertion, sam.CigarSoftClipped:
			readIdx += l
		case sam.CigarDeletion, sam.CigarSkipped:
			refIndex += l
		case sam.CigarHardClipped, sam.CigarPadded:
		default:
			return MismatchCount{}, UnsupportedOpError{co.Type()}
		}
	}
	return mc, nil
}

// WindowMismatches counts mismatches of one pileup element against a bounded
// reference window. Positions outside [w.Start, w.Stop] contribute nothing.
// With ignoreTarget, the position at w.Locus is skipped. With qualSum the
// return value is the summed base quality of the mismatches instead of their
// count. A deletion or skip that only partially overlaps the window advances
// the window cursor by min(elementLength, currentPos-w.Start).
func WindowMismatches(p PileupElement, w RefWindow, ignoreTarget, qualSum bool) int {
	r := p.Read
	read := r.Seq.Expand()

	readIndex := 0
	currentPos := r.Pos
	refIndex := max(0, currentPos-w.Start)

	sum := 0
	for _, co := range r.Cigar {
		l := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			for j := 0; j < l; j, readIndex, currentPos = j+1, readIndex+1, currentPos+1 {
				if currentPos > w.Stop {
					break
				}
				if currentPos < w.Start {
					continue
				}
				refChr := w.Bases[refIndex]
				refIndex++
				if ignoreTarget && w.Locus == currentPos {
					continue
				}
				if read[readIndex] != refChr {
					if qualSum {
						sum += int(r.Qual[readIndex])
					} else {
						sum++
					}
				}
			}
		case sam.CigarInsertion, sam.CigarSoftClipped:
			readIndex += l
		case sam.CigarDeletion, sam.CigarSkipped:
			currentPos += l
			if currentPos > w.Start {
				refIndex += min(l, currentPos-w.Start)
			}
		case sam.CigarHardClipped, sam.CigarPadded:
		}
	}
	return sum
}

// PileupWindowMismatches sums WindowMismatches over every element of a
// pileup.
func PileupWindowMismatches(pile []PileupElement, w RefWindow, ignoreTarget bool) int {
	n := 0
	for _, p := range pile {
		n += WindowMismatches(p, w, ignoreTarget, false)
	}
	return n
}
