// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight-matrix representation consumed by
// the shortest-path solvers of this module.
//
// Weights is a square V×V matrix whose cells are either a finite edge weight
// (any sign, zero included) or the explicit "no edge" state. Absence is tracked
// in a separate presence mask, so no numeric value is ever reserved as a
// marker. Build one cell by cell:
//
//	w, _ := matrix.NewWeights(3)
//	_ = w.SetEdge(0, 1, -2)
//	_ = w.SetEdge(1, 2, 0) // zero-cost edge, distinct from "no edge"
//
// or from a literal:
//
//	w, err := matrix.FromRows([][]matrix.Cell{
//	    {matrix.NoEdge, matrix.Edge(-2), matrix.NoEdge},
//	    {matrix.NoEdge, matrix.NoEdge, matrix.Edge(0)},
//	    {matrix.NoEdge, matrix.NoEdge, matrix.NoEdge},
//	})
//
// The validators (ValidateIndex, ValidateNoSelfLoops, ValidateFinite) work on
// the read-only Reader interface and are shared by algorithms that accept
// foreign matrix implementations.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
