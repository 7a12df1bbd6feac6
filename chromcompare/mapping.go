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

const MappingHeader = "source_chrom\ttarget_chrom\toverlap\tsource_count\ttarget_count\tfrac_source\tfrac_target"

// Mapping is one row of a direction-specific mapping table.
type Mapping struct {
	SourceChrom string
	TargetChrom string // Empty when nothing matched
	Overlap     int
	SourceCount int
	TargetCount int
	FracSource  float64
	FracTarget  float64
}

// Matched reports whether the source chromosome shares any ID with a target.
func (m Mapping) Matched() bool {
	return m.TargetChrom != ""
}

func (m Mapping) String() string {
	if !m.Matched() {
		return fmt.Sprintf("%s\t\t0\t%d\t0\t0\t0", m.SourceChrom, m.SourceCount)
	}

	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%.6f\t%.6f",
		m.SourceChrom, m.TargetChrom, m.Overlap, m.SourceCount, m.TargetCount, m.FracSource, m.FracTarget)
}

// Map resolves every chromosome of source to its best match in target. Rows
// are ordered by source label. A best match sharing no IDs is reported as no
// match.
func Map(source, target *chromfile.ChromMap) []Mapping {
	out := make([]Mapping, 0, source.Len())

	for _, chrom := range source.Sorted() {
		ids := source.IDs(chrom)
		row := Mapping{
			SourceChrom: chrom,
			SourceCount: ids.Len(),
		}

		best, overlap, ok := BestMatch(ids, target)
		if ok && overlap > 0 {
			targetIDs := target.IDs(best)
			row.TargetChrom = best
			row.Overlap = overlap
			row.TargetCount = targetIDs.Len()
			row.FracSource = chromlgs.Fraction(overlap, row.SourceCount)
			row.FracTarget = chromlgs.Fraction(overlap, row.TargetCount)
		}

		out = append(out, row)
	}

	return out
}

// WriteMappings writes the header and one line per row.
func WriteMappings(w io.Writer, rows []Mapping) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, MappingHeader)
	for _, row := range rows {
		fmt.Fprintln(bw, row.String())
	}

	return bw.Flush()
}

// WriteMappingFile creates (or truncates) path and writes rows into it.
func WriteMappingFile(path string, rows []Mapping) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteMappings(f, rows); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
