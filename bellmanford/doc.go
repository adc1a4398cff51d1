// SPDX-License-Identifier: MIT

// Package bellmanford computes single-source shortest paths on a directed,
// edge-weighted graph that may contain negative edge weights, and positively
// detects negative-weight cycles reachable from the source.
//
// Overview:
//
//   - The graph is a square weight matrix (see package matrix): cell (v, x) is
//     either a finite weight, zero and negative values included, or "no edge".
//   - Solve relaxes every edge up to V-1 times, then verifies the fixed point
//     with one more pass. If an edge can still be relaxed, the shortest path is
//     undefined and Solve fails with a *NegativeCycleError instead of returning
//     a wrong table.
//
// When to use:
//
//   - Graphs with negative edges (currency arbitrage, potentials for Johnson's
//     reweighting, difference constraints).
//   - Whenever a negative cycle must be reported rather than silently looped.
//   - For non-negative weights on large sparse graphs, dijkstra is faster.
//
// API reference:
//
//	func Solve(w WeightMatrix, source int, opts ...Option) (pred []int, dist []float64, err error)
//
//	  - pred[x]: predecessor of x on a shortest path; None (-1) for the source
//	    and for unreachable vertices. Follow pred from x to rebuild the path.
//	  - dist[x]: shortest distance from source; Unreached (+Inf) if x cannot be reached.
//	  - err:     nil, an input error (errors.Is(err, ErrInvalidInput)) or a
//	    *NegativeCycleError (errors.Is(err, ErrNegativeCycle)).
//
// Options:
//
//   - WithoutEarlyExit(): always run exactly V-1 passes. By default the solver
//     stops once a pass changes nothing; the result is the same either way.
//   - WithOnPass(fn): observe the distances after every relaxation pass.
//
// Determinism:
//
//   - Vertices and their edges are visited in ascending index order and only
//     strict improvements are applied, so among equal-cost paths the first one
//     found in that order keeps its predecessor. Repeated calls return
//     identical results.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix, ErrEmptyGraph, ErrSourceOutOfRange, ErrSelfLoop,
//     ErrInvalidWeight: input rejected before any work; each is joined to
//     ErrInvalidInput. ErrInvalidWeight also covers a matrix whose Σ|w|
//     overflows float64.
//   - ErrNegativeCycle: wrapped by *NegativeCycleError, which also names the
//     edge that still relaxed and one negative cycle as a closed vertex list.
//     A relaxation that overflows float64 is reported the same way.
//
// Thread safety:
//
//   - Solve keeps no package state and never writes to the matrix, so one
//     matrix may be shared by concurrent Solve calls. Mutating the matrix while
//     a Solve is running is a data race.
package bellmanford
