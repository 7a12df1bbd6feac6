package chromfile

// Map columns in a chrom file to their positions. Columns past ChromLabel are
// ignored.
const (
	ProteinID int = iota
	ChromLabel
)

// Record is one data line of a chrom file. Chrom is empty when the line carried
// only an ID.
type Record struct {
	ID    string
	Chrom string
}

// HasChrom reports whether the line had at least the two columns needed to
// place the ID on a chromosome.
func (r Record) HasChrom() bool {
	return r.Chrom != ""
}
