package chromcompare

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/chromlgs"
	"github.com/carbocation/chromlgs/chromfile"
	"github.com/carbocation/pfx"
)

// Summary holds whole-file statistics, ignoring chromosome grouping.
type Summary struct {
	NewFile      string
	OldFile      string
	NewProteins  int
	OldProteins  int
	Intersection int
}

func Summarize(newFile, oldFile string, newIDs, oldIDs chromfile.IDSet) Summary {
	return Summary{
		NewFile:      newFile,
		OldFile:      oldFile,
		NewProteins:  newIDs.Len(),
		OldProteins:  oldIDs.Len(),
		Intersection: newIDs.IntersectionLen(oldIDs),
	}
}

func (s Summary) FracNew() float64 {
	return chromlgs.Fraction(s.Intersection, s.NewProteins)
}

func (s Summary) FracOld() float64 {
	return chromlgs.Fraction(s.Intersection, s.OldProteins)
}

// Write emits one tab-separated key/value pair per line.
func (s Summary) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "new_file\t%s\n", s.NewFile)
	fmt.Fprintf(bw, "old_file\t%s\n", s.OldFile)
	fmt.Fprintf(bw, "new_proteins\t%d\n", s.NewProteins)
	fmt.Fprintf(bw, "old_proteins\t%d\n", s.OldProteins)
	fmt.Fprintf(bw, "intersection\t%d\n", s.Intersection)
	fmt.Fprintf(bw, "intersection_frac_new\t%.6f\n", s.FracNew())
	fmt.Fprintf(bw, "intersection_frac_old\t%.6f\n", s.FracOld())

	return bw.Flush()
}

func (s Summary) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}

	if err := s.Write(f); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
