// SPDX-License-Identifier: MIT

// Package matrix - Weights: dense V×V edge-weight storage with explicit absence.
//
// Purpose:
//   - Row-major buffer with the index formula from*n + to.
//   - A parallel presence mask, so that "no edge" never collides with a weight.
//     Zero is a legal weight (a zero-cost edge), and so is any negative value.
//   - Safe public surface: accessors and mutators return sentinel errors instead of panicking.
//
// Complexity quicksheet:
//   - NewWeights/FromRows: O(n²); Weight/HasEdge/SetEdge/RemoveEdge: O(1);
//     EdgeCount/Clone/String: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxSetEdge    = "SetEdge"
	ctxRemoveEdge = "RemoveEdge"
	ctxFromRows   = "FromRows"
	ctxNewWeights = "NewWeights"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtNoEdge   = "-"
)

// weightsErrorf attaches method context and coordinates to a sentinel.
func weightsErrorf(method string, from, to int, err error) error {
	return fmt.Errorf("Weights.%s(%d,%d): %w", method, from, to, err)
}

// Cell is a single matrix literal: either an edge weight or the absence of an edge.
// The zero value is NoEdge.
type Cell struct {
	W  float64 // edge weight; meaningful only when Ok is true
	Ok bool    // true if the edge is present
}

// NoEdge is the explicit "no edge" cell.
var NoEdge = Cell{}

// Edge returns a present cell carrying weight w.
func Edge(w float64) Cell { return Cell{W: w, Ok: true} }

// Weights is a square, directed edge-weight matrix.
//   - n is the order (number of vertices); vertices are the indices 0..n-1.
//   - data holds weights in row-major order (offset = from*n + to).
//   - present[k] reports whether data[k] is an edge; absent cells hold 0 and are never read.
type Weights struct {
	n       int
	data    []float64
	present []bool
}

var _ fmt.Stringer = (*Weights)(nil)

// NewWeights creates an n×n matrix with no edges.
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func NewWeights(n int) (*Weights, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewWeights, n, ErrInvalidDimensions)
	}

	return &Weights{
		n:       n,
		data:    make([]float64, n*n),
		present: make([]bool, n*n),
	}, nil
}

// FromRows builds a matrix from a row literal, one Cell per (from, to) pair.
//
//	w, err := matrix.FromRows([][]matrix.Cell{
//	    {matrix.NoEdge, matrix.Edge(-1)},
//	    {matrix.Edge(4), matrix.NoEdge},
//	})
//
// Errors (checked in this order):
//   - ErrInvalidDimensions if rows is empty.
//   - ErrNonSquare if any row length differs from len(rows).
//   - ErrInvalidWeight if a present cell carries NaN or ±Inf.
//
// The input is copied; later changes to rows do not affect the result.
func FromRows(rows [][]Cell) (*Weights, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	// Shape first, so a ragged literal is reported before any value problem.
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxFromRows, i, len(row), n, ErrNonSquare)
		}
	}

	w, err := NewWeights(n)
	if err != nil {
		return nil, err
	}
	var from, to int
	var c Cell
	for from = 0; from < n; from++ {
		for to, c = range rows[from] {
			if !c.Ok {
				continue
			}
			if !finite(c.W) {
				return nil, weightsErrorf(ctxFromRows, from, to, ErrInvalidWeight)
			}
			w.data[from*n+to] = c.W
			w.present[from*n+to] = true
		}
	}

	return w, nil
}

// Order returns the number of vertices. A nil receiver has order 0.
func (w *Weights) Order() int {
	if w == nil {
		return 0
	}

	return w.n
}

// Weight returns the weight of edge from→to and whether the edge is present.
// Out-of-range indices report (0, false).
func (w *Weights) Weight(from, to int) (float64, bool) {
	if !w.inRange(from, to) {
		return 0, false
	}
	k := from*w.n + to
	if !w.present[k] {
		return 0, false
	}

	return w.data[k], true
}

// HasEdge reports whether edge from→to is present.
func (w *Weights) HasEdge(from, to int) bool {
	_, ok := w.Weight(from, to)

	return ok
}

// SetEdge stores weight wt on edge from→to, adding the edge if absent.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange if either index is outside [0, Order()).
//   - ErrInvalidWeight if wt is NaN or ±Inf.
func (w *Weights) SetEdge(from, to int, wt float64) error {
	if w == nil {
		return weightsErrorf(ctxSetEdge, from, to, ErrNilMatrix)
	}
	if !w.inRange(from, to) {
		return weightsErrorf(ctxSetEdge, from, to, ErrOutOfRange)
	}
	if !finite(wt) {
		return weightsErrorf(ctxSetEdge, from, to, ErrInvalidWeight)
	}
	k := from*w.n + to
	w.data[k] = wt
	w.present[k] = true

	return nil
}

// RemoveEdge deletes edge from→to. Removing an absent edge is a no-op.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func (w *Weights) RemoveEdge(from, to int) error {
	if w == nil {
		return weightsErrorf(ctxRemoveEdge, from, to, ErrNilMatrix)
	}
	if !w.inRange(from, to) {
		return weightsErrorf(ctxRemoveEdge, from, to, ErrOutOfRange)
	}
	k := from*w.n + to
	w.data[k] = 0
	w.present[k] = false

	return nil
}

// EdgeCount returns the number of present cells.
func (w *Weights) EdgeCount() int {
	if w == nil {
		return 0
	}
	count := 0
	for _, ok := range w.present {
		if ok {
			count++
		}
	}

	return count
}

// Clone returns a deep copy. Clone of nil is nil.
func (w *Weights) Clone() *Weights {
	if w == nil {
		return nil
	}
	out := &Weights{
		n:       w.n,
		data:    make([]float64, len(w.data)),
		present: make([]bool, len(w.present)),
	}
	copy(out.data, w.data)
	copy(out.present, w.present)

	return out
}

// String renders one bracketed row per line; absent cells print as "-".
func (w *Weights) String() string {
	if w == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var from, to int
	for from = 0; from < w.n; from++ {
		sb.WriteString(_fmtRowOpen)
		for to = 0; to < w.n; to++ {
			if to > 0 {
				sb.WriteString(_fmtSep)
			}
			k := from*w.n + to
			if !w.present[k] {
				sb.WriteString(_fmtNoEdge)
				continue
			}
			sb.WriteString(strconv.FormatFloat(w.data[k], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func (w *Weights) inRange(from, to int) bool {
	return w != nil && from >= 0 && from < w.n && to >= 0 && to < w.n
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
