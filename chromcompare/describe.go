package chromcompare

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// MappingStats describes how completely source chromosomes were recovered in
// the target file.
type MappingStats struct {
	Chromosomes      int
	Matched          int
	MeanFracSource   float64
	MedianFracSource float64
	MinFracSource    float64
}

func (m MappingStats) String() string {
	return fmt.Sprintf("%d/%d chromosomes matched; frac_source mean %.3f median %.3f min %.3f",
		m.Matched, m.Chromosomes, m.MeanFracSource, m.MedianFracSource, m.MinFracSource)
}

// Describe summarizes the frac_source column of a mapping table. Unmatched
// rows contribute a fraction of 0. An empty table yields zero values.
func Describe(rows []Mapping) (MappingStats, error) {
	out := MappingStats{Chromosomes: len(rows)}
	if len(rows) == 0 {
		return out, nil
	}

	fracs := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		if row.Matched() {
			out.Matched++
		}
		fracs = append(fracs, row.FracSource)
	}

	var err error
	if out.MeanFracSource, err = fracs.Mean(); err != nil {
		return out, pfx.Err(err)
	}
	if out.MedianFracSource, err = fracs.Median(); err != nil {
		return out, pfx.Err(err)
	}
	if out.MinFracSource, err = fracs.Min(); err != nil {
		return out, pfx.Err(err)
	}

	return out, nil
}
