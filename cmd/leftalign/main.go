package main

import (
	"fmt"
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/biogo/hts/sam"
	"github.com/brentp/faidx"
	"github.com/brentp/xopen"

	"alnutil"
	"alnutil/bamat"
)

type cliarg struct {
	Reference string `arg:"-r,required,help:path to indexed reference fasta"`
	Output    string `arg:"-o,help:output SAM path; - for stdout"`
	Region    string `arg:"help:optional region to restrict to (chrom:start-end)"`
	BamPath   string `arg:"positional,required"`
}

func (c cliarg) Version() string {
	return "leftalign 0.1.0"
}

func main() {
	cli := &cliarg{Output: "-"}
	arg.MustParse(cli)

	fai, err := faidx.New(cli.Reference)
	if err != nil {
		log.Fatal(err)
	}

	b, err := bamat.New(cli.BamPath)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	var reg bamat.Region
	if cli.Region != "" {
		if reg, err = bamat.ParseRegion(cli.Region); err != nil {
			log.Fatal(err)
		}
	}
	it, err := b.Query(reg)
	if err != nil {
		log.Fatal(err)
	}

	out, err := xopen.Wopen(cli.Output)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	w, err := sam.NewWriter(out, b.Header(), sam.FlagDecimal)
	if err != nil {
		log.Fatal(err)
	}

	shifted := 0
	for it.Next() {
		rec := it.Record()
		if !alnutil.Unmapped(rec) && alnutil.HasIndel(rec.Cigar) {
			seq, err := fai.Get(rec.Ref.Name(), rec.Pos, rec.End())
			if err != nil {
				log.Fatal(err)
			}
			was := rec.Cigar.String()
			rec.Cigar = alnutil.LeftAlignIndel(rec.Cigar, []byte(seq), rec.Seq.Expand(), 0, 0)
			if rec.Cigar.String() != was {
				shifted++
			}
		}
		if err := w.Write(rec); err != nil {
			log.Fatal(err)
		}
	}
	if err := it.Error(); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "left-aligned %d records\n", shifted)
}
