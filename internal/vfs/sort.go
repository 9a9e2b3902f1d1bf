package vfs

import "sort"

// SortForDisplay returns a copy of nodes ordered directories first, then by name
// (case-sensitive, byte-wise).
func SortForDisplay(nodes []*Node) []*Node {
	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsDir() != sorted[j].IsDir() {
			return sorted[i].IsDir()
		}
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}
