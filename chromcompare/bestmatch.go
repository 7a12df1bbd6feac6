package chromcompare

import "github.com/carbocation/chromlgs/chromfile"

// BestMatch finds the chromosome in other that shares the most IDs with ids.
//
// Candidates are scanned in other's first-seen order. The first candidate is
// always taken; after that a candidate replaces the current best only if it
// overlaps more, or overlaps equally and its label sorts before the current
// best's label. This is a greedy per-chromosome choice, so several source
// chromosomes may resolve to the same target.
//
// If other is empty, ok is false and overlap is -1.
func BestMatch(ids chromfile.IDSet, other *chromfile.ChromMap) (label string, overlap int, ok bool) {
	overlap = -1

	for _, candidate := range other.Labels() {
		n := ids.IntersectionLen(other.IDs(candidate))
		if n > overlap || (n == overlap && ok && candidate < label) {
			label = candidate
			overlap = n
			ok = true
		}
	}

	return label, overlap, ok
}
