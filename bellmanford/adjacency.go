// SPDX-License-Identifier: MIT

package bellmanford

// adjacency returns, in ascending order, every x with an edge v→x in w.
// The order fixes the relaxation order and therefore tie-breaking: the first
// strict improvement in index order is the predecessor that sticks.
func adjacency(w WeightMatrix, v int) []int {
	return appendAdjacency(nil, w, v)
}

// appendAdjacency is adjacency appending into dst, so the solver can reuse one
// buffer across all passes.
func appendAdjacency(dst []int, w WeightMatrix, v int) []int {
	n := w.Order()
	for x := 0; x < n; x++ {
		if _, ok := w.Weight(v, x); ok {
			dst = append(dst, x)
		}
	}

	return dst
}
