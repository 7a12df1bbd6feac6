// comparechroms compares two chrom files (protein ID -> chromosome label) and
// reports, for each chromosome of either file, the chromosome of the other
// file that shares the most protein IDs.
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
	"github.com/carbocation/chromlgs/chromcompare"
	"github.com/carbocation/chromlgs/chromfile"
	_ "github.com/carbocation/chromlgs/compileinfoprint"
	"github.com/carbocation/pfx"
)

type config struct {
	NewFile string
	OldFile string
	Tag     string
	OutDir  string
}

func main() {
	var cfg config

	flag.StringVar(&cfg.NewFile, "new", "", "New chrom file (protein ID and chromosome label in the first two columns). May be compressed, and may be a google storage URL (gs://).")
	flag.StringVar(&cfg.OldFile, "old", "", "Old chrom file, same format as --new.")
	flag.StringVar(&cfg.Tag, "tag", "", "Prefix for the output file names.")
	flag.StringVar(&cfg.OutDir, "outdir", ".", "Output directory. Created if it does not exist.")
	flag.Parse()

	if cfg.NewFile == "" || cfg.OldFile == "" || cfg.Tag == "" {
		fmt.Fprintln(os.Stderr, "--new, --old and --tag are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	client, err := chromlgs.NewClientIfNeeded(context.Background(), cfg.NewFile, cfg.OldFile)
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

	newMap, newIDs, err := chromfile.LoadFile(cfg.NewFile, client)
	if err != nil {
		return err
	}
	oldMap, oldIDs, err := chromfile.LoadFile(cfg.OldFile, client)
	if err != nil {
		return err
	}

	summary := chromcompare.Summarize(displayPath(cfg.NewFile), displayPath(cfg.OldFile), newIDs, oldIDs)
	if err := summary.WriteFile(filepath.Join(outDir, cfg.Tag+"_summary.txt")); err != nil {
		return err
	}
	log.Printf("%d of %d new and %d old proteins are shared\n", summary.Intersection, summary.NewProteins, summary.OldProteins)

	directions := []struct {
		name           string
		source, target *chromfile.ChromMap
	}{
		{"new_to_old", newMap, oldMap},
		{"old_to_new", oldMap, newMap},
	}

	for _, d := range directions {
		rows := chromcompare.Map(d.source, d.target)

		if err := chromcompare.WriteMappingFile(filepath.Join(outDir, cfg.Tag+"_"+d.name+".tsv"), rows); err != nil {
			return err
		}

		desc, err := chromcompare.Describe(rows)
		if err != nil {
			return err
		}
		log.Printf("%s: %s\n", d.name, desc)
	}

	return nil
}

// displayPath renders local paths in cleaned form and leaves URLs untouched.
func displayPath(path string) string {
	if chromlgs.IsGoogleStoragePath(path) {
		return path
	}
	return filepath.Clean(path)
}
