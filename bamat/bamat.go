// Package bamat provides positioned access to BAM files: indexed region
// queries when a .bai is present, sequential streaming otherwise.
package bamat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// BamAt holds the bam.Reader and, when available, its index. Because BamAt
// holds the underlying os.File open, it is not safe to query from multiple
// go routines.
type BamAt struct {
	*bam.Reader
	idx  *bam.Index
	fh   *os.File
	Refs map[string]*sam.Reference
}

// Region is a 0-based half-open genomic interval. An End of -1 means the
// full chromosome; an empty Chrom means the full sequential stream.
type Region struct {
	Chrom string
	Start int
	End   int
}

// ParseRegion parses "chrom", "chrom:start" or "chrom:start-end" with
// 1-based inclusive coordinates into a Region.
func ParseRegion(s string) (Region, error) {
	chromse := strings.SplitN(s, ":", 2)
	reg := Region{Chrom: chromse[0], End: -1}
	if len(chromse) == 1 {
		return reg, nil
	}
	se := strings.SplitN(chromse[1], "-", 2)
	start, err := strconv.Atoi(se[0])
	if err != nil {
		return reg, fmt.Errorf("bamat: bad region %q: %v", s, err)
	}
	reg.Start = start - 1
	if len(se) == 2 {
		reg.End, err = strconv.Atoi(se[1])
		if err != nil {
			return reg, fmt.Errorf("bamat: bad region %q: %v", s, err)
		}
	}
	return reg, nil
}

// New returns a BamAt for the given path; "", "-" and "stdin" read from
// standard input. A missing index is not an error, it only disables region
// queries.
func New(path string) (*BamAt, error) {
	bamat := &BamAt{}
	if path == "" || path == "-" || path == "stdin" {
		bamat.fh = os.Stdin
	} else {
		var err error
		bamat.fh, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path + ".bai")
		if err != nil && len(path) > 4 {
			f, err = os.Open(path[:len(path)-4] + ".bai")
		}
		if err == nil {
			idx, err := bam.ReadIndex(bufio.NewReader(f))
			f.Close()
			if err != nil {
				bamat.fh.Close()
				return nil, err
			}
			bamat.idx = idx
		}
	}

	br, err := bam.NewReader(bamat.fh, 2)
	if err != nil {
		bamat.fh.Close()
		return nil, err
	}
	bamat.Reader = br
	hdr := br.Header()
	bamat.Refs = make(map[string]*sam.Reference, 40)
	for _, r := range hdr.Refs() {
		bamat.Refs[r.Name()] = r
	}
	return bamat, nil
}

// Query returns an iterator over the records overlapping reg.
func (b *BamAt) Query(reg Region) (*bam.Iterator, error) {
	if reg.Chrom == "" {
		return bam.NewIterator(b.Reader, nil)
	}
	if b.idx == nil {
		return nil, fmt.Errorf("bamat: region query needs a .bai index")
	}
	ref, ok := b.Refs[reg.Chrom]
	if !ok {
		return nil, fmt.Errorf("bamat: unknown chromosome %q", reg.Chrom)
	}
	end := reg.End
	if end <= 0 {
		end = ref.Len() - 1
	}
	chunks, err := b.idx.Chunks(ref, reg.Start, end)
	if err != nil {
		return nil, err
	}
	return bam.NewIterator(b.Reader, chunks)
}

// Close closes the underlying file and the bam.Reader.
func (b *BamAt) Close() error {
	if b == nil {
		return nil
	}
	if b.Reader != nil {
		b.Reader.Close()
	}
	if b.fh != nil && b.fh != os.Stdin {
		return b.fh.Close()
	}
	return nil
}
