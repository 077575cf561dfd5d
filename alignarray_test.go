package alnutil_test

import (
	"github.com/biogo/hts/sam"

	"alnutil"

	. "gopkg.in/check.v1"
)

type ArrayTest struct{}

var _ = Suite(&ArrayTest{})

func (t *ArrayTest) TestIndelFreeEqualsRead(c *C) {
	cig := sam.Cigar{sam.NewCigarOp(sam.CigarMatch, 5)}
	a, err := alnutil.AlignmentArray(cig, []byte("AACGT"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "AACGT")
}

func (t *ArrayTest) TestDeletionSentinel(c *C) {
	cig := sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 2),
		sam.NewCigarOp(sam.CigarDeletion, 2),
		sam.NewCigarOp(sam.CigarMatch, 3),
	}
	a, err := alnutil.AlignmentArray(cig, []byte("AATTT"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "AA**TTT")
}

func (t *ArrayTest) TestInsertionTagsPrecedingSlot(c *C) {
	cig := sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 2),
		sam.NewCigarOp(sam.CigarInsertion, 2),
		sam.NewCigarOp(sam.CigarMatch, 3),
	}
	a, err := alnutil.AlignmentArray(cig, []byte("ACGGTTT"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "AcTTT")
	c.Assert(alnutil.IsInsertionTagged(a[1]), Equals, true)
	c.Assert(alnutil.UntagInsertion(a[1]), Equals, byte('C'))
}

func (t *ArrayTest) TestLeadingInsertionTagsNothing(c *C) {
	cig := sam.Cigar{
		sam.NewCigarOp(sam.CigarInsertion, 2),
		sam.NewCigarOp(sam.CigarMatch, 3),
	}
	a, err := alnutil.AlignmentArray(cig, []byte("ACTTT"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "TTT")
}

func (t *ArrayTest) TestSoftClipWritesNoSlot(c *C) {
	cig := sam.Cigar{
		sam.NewCigarOp(sam.CigarSoftClipped, 2),
		sam.NewCigarOp(sam.CigarMatch, 3),
	}
	a, err := alnutil.AlignmentArray(cig, []byte("GGAAA"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "AAA")
}

func (t *ArrayTest) TestFullRecordShape(c *C) {
	// 8M2I4M1D3M over TTAGATAAAGGATACTG: the base before the insertion is
	// tagged, the deleted base gets the sentinel.
	cig := sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 8),
		sam.NewCigarOp(sam.CigarInsertion, 2),
		sam.NewCigarOp(sam.CigarMatch, 4),
		sam.NewCigarOp(sam.CigarDeletion, 1),
		sam.NewCigarOp(sam.CigarMatch, 3),
	}
	a, err := alnutil.AlignmentArray(cig, []byte("TTAGATAAAGGATACTG"))
	c.Assert(err, IsNil)
	c.Assert(string(a), Equals, "TTAGATAaGATA*CTG")

	refLen, _ := cig.Lengths()
	c.Assert(len(a), Equals, refLen)
}

func (t *ArrayTest) TestLengthMatchesReferenceSpan(c *C) {
	cigs := []sam.Cigar{
		{sam.NewCigarOp(sam.CigarMatch, 5)},
		{sam.NewCigarOp(sam.CigarSoftClipped, 3), sam.NewCigarOp(sam.CigarMatch, 6)},
		{sam.NewCigarOp(sam.CigarMatch, 2), sam.NewCigarOp(sam.CigarSkipped, 4), sam.NewCigarOp(sam.CigarMatch, 2)},
		{sam.NewCigarOp(sam.CigarEqual, 3), sam.NewCigarOp(sam.CigarMismatch, 1), sam.NewCigarOp(sam.CigarDeletion, 2), sam.NewCigarOp(sam.CigarMatch, 2)},
	}
	read := []byte("AAAAAAAAAAAAAAAA")
	for _, cig := range cigs {
		a, err := alnutil.AlignmentArray(cig, read)
		c.Assert(err, IsNil)
		refLen, _ := cig.Lengths()
		c.Assert(len(a), Equals, refLen)
	}
}

func (t *ArrayTest) TestUnsupportedOperator(c *C) {
	cig := sam.Cigar{sam.NewCigarOp(sam.CigarBack, 2)}
	_, err := alnutil.AlignmentArray(cig, []byte("AA"))
	c.Assert(err, DeepEquals, alnutil.UnsupportedOpError{Op: sam.CigarBack})
}
