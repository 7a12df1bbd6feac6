package chromfile

import "sort"

// IDSet is a set of protein or gene IDs compared by exact string equality.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

func (s IDSet) Has(id string) bool {
	_, exists := s[id]
	return exists
}

func (s IDSet) Len() int {
	return len(s)
}

// IntersectionLen counts the IDs present in both sets without allocating.
func (s IDSet) IntersectionLen(other IDSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	n := 0
	for id := range small {
		if large.Has(id) {
			n++
		}
	}

	return n
}

// Intersect returns a new set holding the IDs present in both sets.
func (s IDSet) Intersect(other IDSet) IDSet {
	out := make(IDSet)
	for id := range s {
		if other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Sorted returns the members in lexicographic order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
