package presence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/chromlgs"
	"github.com/carbocation/pfx"
)

// Tally counts, for one species, the rows naming an ortholog (Total) and how
// many of those orthologs were found (Present).
type Tally struct {
	Present int
	Total   int
}

// Fraction is Present/Total, or 0 if no row named an ortholog.
func (t Tally) Fraction() float64 {
	return chromlgs.Fraction(t.Present, t.Total)
}

// Counts aggregates an annotation run.
type Counts struct {
	Rows    int
	Tallies [NumSpecies]Tally
}

// Add records one row's gene for sp and returns the 0/1 presence flag.
func (c *Counts) Add(sp Species, gene string, present bool) int {
	flag := 0
	if present {
		flag = 1
	}

	c.Tallies[sp].Present += flag
	if gene != Missing {
		c.Tallies[sp].Total++
	}

	return flag
}

func (c Counts) Tally(sp Species) Tally {
	return c.Tallies[sp]
}

// WriteSummary emits "rows" followed by present, total and fraction for each
// species, one tab-separated key/value pair per line.
func WriteSummary(w io.Writer, c Counts) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "rows\t%d\n", c.Rows)
	for _, sp := range AllSpecies() {
		t := c.Tally(sp)
		fmt.Fprintf(bw, "%s_present\t%d\n", sp, t.Present)
		fmt.Fprintf(bw, "%s_total\t%d\n", sp, t.Total)
		fmt.Fprintf(bw, "%s_fraction\t%.6f\n", sp, t.Fraction())
	}

	return bw.Flush()
}

func WriteSummaryFile(path string, c Counts) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteSummary(f, c); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
