// unicellpresence cross-references the UnicellMetazoanLGs orthology table
// against the current chrom files of COW, SRO and CFR, flagging for every
// orthology group whether each species' gene is still annotated.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/carbocation/chromlgs"
	"github.com/carbocation/chromlgs/chromfile"
	_ "github.com/carbocation/chromlgs/compileinfoprint"
	"github.com/carbocation/chromlgs/presence"
	"github.com/carbocation/pfx"
)

type config struct {
	RBH       string
	Chroms    [presence.NumSpecies]string
	OutDir    string
	Prefix    string
	Delimiter string
}

func main() {
	var cfg config

	flag.StringVar(&cfg.RBH, "rbh", "", "Path to the UnicellMetazoanLGs.rbh orthology table. Needs gene_group, COW_gene, SRO_gene and CFR_gene columns.")
	flag.StringVar(&cfg.Chroms[presence.COW], "cow", "", "COW chrom file.")
	flag.StringVar(&cfg.Chroms[presence.SRO], "sro", "", "SRO chrom file.")
	flag.StringVar(&cfg.Chroms[presence.CFR], "cfr", "", "CFR chrom file.")
	flag.StringVar(&cfg.OutDir, "outdir", ".", "Output directory. Created if it does not exist.")
	flag.StringVar(&cfg.Prefix, "prefix", "UnicellMetazoanLGs", "Prefix for the output file names.")
	flag.StringVar(&cfg.Delimiter, "delimiter", `\t`, "Delimiter of the --rbh table. Use 'auto' to detect it.")
	flag.Parse()

	if cfg.RBH == "" || cfg.Chroms[presence.COW] == "" || cfg.Chroms[presence.SRO] == "" || cfg.Chroms[presence.CFR] == "" {
		fmt.Fprintln(os.Stderr, "--rbh, --cow, --sro and --cfr are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	paths := append([]string{cfg.RBH}, cfg.Chroms[:]...)
	client, err := chromlgs.NewClientIfNeeded(context.Background(), paths...)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := run(cfg, client); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config, client *storage.Client) error {
	outDir, err := chromlgs.ExpandHome(cfg.OutDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return pfx.Err(err)
	}

	var sets presence.Sets
	for _, sp := range presence.AllSpecies() {
		if sets[sp], err = chromfile.LoadIDsFile(cfg.Chroms[sp], client); err != nil {
			return err
		}
	}

	table, delim, err := chromlgs.OpenDelimited(cfg.RBH, client, cfg.Delimiter)
	if err != nil {
		return err
	}
	defer table.Close()

	// The header is checked before any output exists.
	rows, err := presence.NewRowReader(table, delim)
	if err != nil {
		return err
	}
	log.Printf("Resolved orthology columns in %s: %+v\n", cfg.RBH, rows.Columns())

	out, err := os.OpenFile(filepath.Join(outDir, cfg.Prefix+"_presence.tsv"), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}

	counts, err := presence.WriteAnnotated(out, rows, sets)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return pfx.Err(err)
	}

	if err := presence.WriteSummaryFile(filepath.Join(outDir, cfg.Prefix+"_summary.txt"), counts); err != nil {
		return err
	}

	log.Printf("Annotated %d orthology groups\n", counts.Rows)
	for _, sp := range presence.AllSpecies() {
		t := counts.Tally(sp)
		log.Printf("%s: %d of %d orthologs present (%.3f)\n", sp, t.Present, t.Total, t.Fraction())
	}

	return nil
}
