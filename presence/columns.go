package presence

import (
	"fmt"
	"strings"
)

// GeneGroupColumn names the orthology group of a row.
const GeneGroupColumn = "gene_group"

// Missing is the value the orthology table uses when a species has no
// ortholog in a group.
const Missing = "nan"

// Columns holds the header positions of the required orthology columns.
type Columns struct {
	GeneGroup int
	Gene      [NumSpecies]int
}

// ResolveColumns finds each required column in header. Extra columns are
// allowed in any position, and when a name repeats its first position is
// used. A required column that is absent is an error.
func ResolveColumns(header []string) (Columns, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, exists := positions[name]
		if !exists {
			return 0, fmt.Errorf("required column %q was not found in header [%s]", name, strings.Join(header, ", "))
		}
		return i, nil
	}

	var cols Columns
	var err error
	if cols.GeneGroup, err = lookup(GeneGroupColumn); err != nil {
		return cols, err
	}
	for _, sp := range AllSpecies() {
		if cols.Gene[sp], err = lookup(sp.GeneColumn()); err != nil {
			return cols, err
		}
	}

	return cols, nil
}
