// SPDX-License-Identifier: MIT

// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on a dense weight matrix.
//
// Complexity:
//
//   - Time:  O(V·E) with E ≤ V², O(V³) on the matrix in the worst case.
//   - V-1 relaxation passes plus one verification pass over every edge.
//   - Space: O(V) for distances, predecessors and the active-vertex sets.
//
// Notes on implementation choices:
//
//   - Reachability is tracked explicitly; an unreached vertex never takes part
//     in an addition, so no Inf arithmetic is relied upon.
//   - A vertex whose distance has not changed since its last scan is skipped:
//     its outgoing edges were already relaxed against the same value. This
//     keeps the relaxation order, and hence the predecessors, identical to a
//     full scan.
//   - The verification pass always scans every edge of every reached vertex.
//   - Σ|w| over all edges is checked to be finite up front. With that bound a
//     sum dist[v]+w can only overflow (to -Inf) while a negative cycle is being
//     unrolled, so an overflowing relaxation is reported as a negative cycle.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/shortestpath/matrix"
)

// Solve computes shortest distances from source to every vertex of w.
//
// Returns:
//
//   - pred: pred[x] is the predecessor of x on a shortest path from source,
//     None for the source itself and for unreachable vertices.
//   - dist: dist[x] is the shortest distance, Unreached (+Inf) if x cannot be
//     reached.
//   - err:  nil, an input error matching ErrInvalidInput, or a
//     *NegativeCycleError matching ErrNegativeCycle. On error pred and dist
//     are nil.
//
// Preconditions and validation (in order):
//  1. w must be non-nil (ErrNilMatrix).
//  2. w must have at least one vertex (ErrEmptyGraph).
//  3. source must lie in [0, V) (ErrSourceOutOfRange).
//  4. no self-loops (ErrSelfLoop).
//  5. every weight finite (ErrInvalidWeight).
//  6. Σ|w| over all present edges finite (ErrInvalidWeight).
//
// Passes: V-1 is an upper bound. Solve stops as soon as a pass relaxes
// nothing, because every later pass would be a no-op; WithoutEarlyExit runs
// all V-1. pred and dist are the same either way.
//
// Precision: relaxation uses a strict float64 "<" with no tolerance. Sums are
// exact for integer weights (up to 2^53) and for any weights that add without
// rounding, e.g. small dyadic fractions. Otherwise rounding can tip a
// zero-weight cycle such as 0.3, -0.1, -0.2 slightly negative, and Solve
// reports it as a negative cycle. Scale such weights to integers first.
//
// Solve never mutates w; concurrent calls may share it.
func Solve(w WeightMatrix, source int, opts ...Option) ([]int, []float64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate before allocating anything.
	if err := validate(w, source); err != nil {
		return nil, nil, err
	}

	// 3) Run.
	r := newRunner(w, source, cfg)
	if cycle := r.relaxAll(); cycle != nil {
		return nil, nil, cycle
	}
	if cycle := r.verify(); cycle != nil {
		return nil, nil, cycle
	}

	return r.pred, r.dist, nil
}

// validate applies the Solve preconditions in their documented order.
func validate(w WeightMatrix, source int) error {
	if w == nil {
		return invalidInput(ErrNilMatrix)
	}
	n := w.Order()
	if n <= 0 {
		return invalidInput(ErrEmptyGraph)
	}
	if err := matrix.ValidateIndex(n, source); err != nil {
		return invalidInput(fmt.Errorf("%w: %w", ErrSourceOutOfRange, err))
	}
	if err := matrix.ValidateNoSelfLoops(w); err != nil {
		return invalidInput(err)
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return invalidInput(err)
	}
	if err := matrix.ValidateSumBounded(w); err != nil {
		return invalidInput(err)
	}

	return nil
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	w       WeightMatrix // input; read-only
	n       int          // number of vertices
	options Options
	dist    []float64 // best-known distance; meaningful only where reached
	pred    []int     // predecessor on the best-known path, or None
	reached []bool    // reached[v] once some path source⇝v has been found
	// prev holds vertices whose distance changed during the previous pass,
	// cur those changed during the current pass.
	prev, cur *sparsesets.Set
	adj       []int // reusable adjacency buffer
}

// newRunner allocates and initialises the working arrays:
// dist[source]=0, everything else Unreached, every predecessor None.
func newRunner(w WeightMatrix, source int, cfg Options) *runner {
	n := w.Order()
	r := &runner{
		w:       w,
		n:       n,
		options: cfg,
		dist:    make([]float64, n),
		pred:    make([]int, n),
		reached: make([]bool, n),
		prev:    sparsesets.New(n),
		cur:     sparsesets.New(n),
		adj:     make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = Unreached
		r.pred[v] = None
	}
	r.dist[source] = 0
	r.reached[source] = true
	// The source is the only vertex with a distance its edges have not seen.
	r.prev.Insert(source)

	return r
}

// relaxAll runs up to V-1 relaxation passes. Any simple shortest path has at
// most V-1 edges, so after pass k every shortest path of ≤k edges is final.
// It returns non-nil only if a relaxation overflowed.
func (r *runner) relaxAll() *NegativeCycleError {
	var (
		relaxed  int
		overflow *NegativeCycleError
	)
	for pass := 1; pass < r.n; pass++ {
		relaxed, overflow = r.relaxPass()
		if overflow != nil {
			return overflow
		}
		if r.options.OnPass != nil {
			r.options.OnPass(pass, relaxed, r.dist)
		}
		// Rotate: this pass's changes drive the next one.
		r.prev, r.cur = r.cur, r.prev
		r.cur.Clear()
		if relaxed == 0 && r.options.EarlyExit {
			return nil
		}
	}

	return nil
}

// relaxPass scans vertices in index order and relaxes the outgoing edges of
// every active one. It returns the number of successful relaxations, or a
// *NegativeCycleError for the first relaxation whose sum overflowed.
func (r *runner) relaxPass() (int, *NegativeCycleError) {
	relaxed := 0
	var (
		v, x int
		w, d float64
	)
	for v = 0; v < r.n; v++ {
		if !r.reached[v] {
			continue // unreached vertices never propagate
		}
		if !r.prev.Contains(v) && !r.cur.Contains(v) {
			continue // distance unchanged since v was last scanned
		}
		r.adj = appendAdjacency(r.adj[:0], r.w, v)
		for _, x = range r.adj {
			w, _ = r.w.Weight(v, x)
			if !r.improves(v, x, w) {
				continue
			}
			d = r.dist[v] + w
			if math.IsInf(d, 0) {
				// Keep dist finite; link x to v so the cycle can be traced.
				r.pred[x] = v
				return relaxed, &NegativeCycleError{From: v, To: x, Cycle: r.cycleThrough(x)}
			}
			r.set(x, d, v)
			if !r.cur.Contains(x) {
				r.cur.Insert(x)
			}
			relaxed++
		}
	}

	return relaxed, nil
}

// verify runs one more pass over every edge of every reached vertex. If any
// edge still relaxes, the graph holds a negative cycle reachable from the
// source. The pass keeps relaxing so the last relaxed vertex can be traced
// back into the cycle; the working arrays are discarded in that case.
func (r *runner) verify() *NegativeCycleError {
	var (
		found *NegativeCycleError
		last  = None
		v, x  int
		w     float64
	)
	for v = 0; v < r.n; v++ {
		if !r.reached[v] {
			continue
		}
		r.adj = appendAdjacency(r.adj[:0], r.w, v)
		for _, x = range r.adj {
			w, _ = r.w.Weight(v, x)
			if !r.improves(v, x, w) {
				continue
			}
			if found == nil {
				found = &NegativeCycleError{From: v, To: x}
			}
			r.set(x, r.dist[v]+w, v)
			last = x
		}
	}
	if found == nil {
		return nil
	}
	found.Cycle = r.cycleThrough(last)

	return found
}

// improves reports whether edge v→x of weight w strictly shortens the path to x.
// v must be reached.
func (r *runner) improves(v, x int, w float64) bool {
	if !r.reached[x] {
		return true
	}

	return r.dist[v]+w < r.dist[x]
}

func (r *runner) set(x int, d float64, p int) {
	r.dist[x] = d
	r.pred[x] = p
	r.reached[x] = true
}

// cycleThrough walks V predecessor links back from x, which lands on a cycle
// of the predecessor graph (every such cycle is negative), then collects it.
func (r *runner) cycleThrough(x int) []int {
	y := x
	for i := 0; i < r.n; i++ {
		if y == None {
			return nil
		}
		y = r.pred[y]
	}
	if y == None {
		return nil
	}

	// Collect backwards: y, pred(y), pred(pred(y)), ... until y repeats.
	back := []int{y}
	for p := r.pred[y]; p != y; p = r.pred[p] {
		if p == None || len(back) > r.n {
			return nil
		}
		back = append(back, p)
	}

	return canonicalCycle(back)
}

// canonicalCycle turns a backward vertex list into a closed forward cycle
// starting at its smallest vertex: [2 1 3] (edges 1→2, 3→1, 2→3) → [1 2 3 1].
func canonicalCycle(back []int) []int {
	k := len(back)
	fwd := make([]int, k)
	for i, v := range back {
		fwd[k-1-i] = v
	}
	start := 0
	for i := 1; i < k; i++ {
		if fwd[i] < fwd[start] {
			start = i
		}
	}
	out := make([]int, 0, k+1)
	out = append(out, fwd[start:]...)
	out = append(out, fwd[:start]...)

	return append(out, out[0])
}
