package presence

import "github.com/carbocation/chromlgs/chromfile"

// Species identifies one of the unicellular holozoans tracked in the
// orthology table.
type Species int

const (
	COW Species = iota // Capsaspora owczarzaki
	SRO                // Salpingoeca rosetta
	CFR                // Creolimax fragrantissima

	NumSpecies
)

var speciesNames = [NumSpecies]string{"COW", "SRO", "CFR"}

// AllSpecies lists the species in output order.
func AllSpecies() []Species {
	return []Species{COW, SRO, CFR}
}

func (s Species) String() string {
	if s < 0 || s >= NumSpecies {
		return "unknown"
	}
	return speciesNames[s]
}

// GeneColumn is the orthology table column holding this species' gene ID.
func (s Species) GeneColumn() string {
	return s.String() + "_gene"
}

// PresentColumn is the output column flagging presence for this species.
func (s Species) PresentColumn() string {
	return s.String() + "_present"
}

// Sets holds the current annotation's ID set for each species.
type Sets [NumSpecies]chromfile.IDSet
