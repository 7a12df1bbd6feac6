package chromfile

import "sort"

// ChromMap groups IDs by chromosome label. It remembers the order in which
// labels were first seen, which BestMatch-style scans depend on.
type ChromMap struct {
	order []string
	ids   map[string]IDSet
}

func NewChromMap() *ChromMap {
	return &ChromMap{ids: make(map[string]IDSet)}
}

// Add places id on chrom. An ID may be placed on several chromosomes.
func (m *ChromMap) Add(chrom, id string) {
	set, exists := m.ids[chrom]
	if !exists {
		set = make(IDSet)
		m.ids[chrom] = set
		m.order = append(m.order, chrom)
	}
	set.Add(id)
}

// Labels returns the chromosome labels in first-seen order.
func (m *ChromMap) Labels() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Sorted returns the chromosome labels in lexicographic order.
func (m *ChromMap) Sorted() []string {
	out := m.Labels()
	sort.Strings(out)
	return out
}

// IDs returns the set for chrom, or nil if the label is unknown. The returned
// set must not be modified.
func (m *ChromMap) IDs(chrom string) IDSet {
	return m.ids[chrom]
}

// Len is the number of chromosome labels.
func (m *ChromMap) Len() int {
	return len(m.order)
}

// Union returns every ID placed on any chromosome.
func (m *ChromMap) Union() IDSet {
	out := make(IDSet)
	for _, set := range m.ids {
		for id := range set {
			out.Add(id)
		}
	}
	return out
}
