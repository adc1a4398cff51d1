// SPDX-License-Identifier: MIT

// Package shortestpath is the root of a small shortest-path module built
// around Bellman-Ford: single-source shortest paths on directed graphs whose
// edges may be negative, with explicit negative-cycle detection.
//
// Subpackages:
//
//	matrix/      - Weights: V×V weight matrix with an explicit "no edge" state
//	bellmanford/ - Solve: distances, predecessors, or a *NegativeCycleError
//	examples/    - runnable demonstration programs
//
// Quick example:
//
//	w, _ := matrix.NewWeights(3)
//	_ = w.SetEdge(0, 1, 4)
//	_ = w.SetEdge(1, 2, -2)
//	pred, dist, err := bellmanford.Solve(w, 0)
//	// pred = [-1 0 1], dist = [0 4 2], err = nil
//
//	go get github.com/katalvlaran/shortestpath
package shortestpath
