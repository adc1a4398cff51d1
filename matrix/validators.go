// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - One canonical place for the structural checks that algorithms run before
//    touching a weight matrix: index range, self-loops, finite weights and
//    a bounded total weight.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap again uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, scan in fixed row-major order and allocate nothing
//    on the success path. The first violation in that order is reported.

package matrix

import (
	"fmt"
	"math"
)

// Reader is the read-only view the validators need. *Weights implements it;
// so does any caller-provided matrix adapter.
type Reader interface {
	// Order returns the number of vertices V; the matrix is V×V.
	Order() int
	// Weight returns the weight of edge from→to and whether it is present.
	Weight(from, to int) (float64, bool)
}

var _ Reader = (*Weights)(nil)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateIndex checks 0 <= i < n.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(n, i int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrOutOfRange))
	}

	return nil
}

// ValidateNoSelfLoops checks that no diagonal cell m[v][v] is present.
//
// Errors: ErrNilMatrix if m is nil, ErrSelfLoop naming the first offending vertex.
// Complexity: O(n).
func ValidateNoSelfLoops(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNoSelfLoops", ErrNilMatrix)
	}
	n := m.Order()
	for v := 0; v < n; v++ {
		if _, ok := m.Weight(v, v); ok {
			return validatorErrorf("ValidateNoSelfLoops", fmt.Errorf("vertex %d: %w", v, ErrSelfLoop))
		}
	}

	return nil
}

// ValidateFinite checks that every present weight is finite.
// *Weights can never hold NaN/±Inf; this guards foreign Reader implementations.
//
// Errors: ErrNilMatrix, ErrInvalidWeight naming the first offending edge.
// Complexity: O(n²).
func ValidateFinite(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	n := m.Order()
	var (
		from, to int
		w        float64
		ok       bool
	)
	for from = 0; from < n; from++ {
		for to = 0; to < n; to++ {
			w, ok = m.Weight(from, to)
			if ok && !finite(w) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("edge %d→%d weight=%v: %w", from, to, w, ErrInvalidWeight))
			}
		}
	}

	return nil
}

// ValidateSumBounded checks that Σ|w| over all present edges is finite.
// The sum bounds the magnitude of every simple path, so distances built from
// such paths cannot overflow float64.
//
// Errors: ErrNilMatrix, ErrInvalidWeight if the sum overflows.
// Complexity: O(n²).
func ValidateSumBounded(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateSumBounded", ErrNilMatrix)
	}
	n := m.Order()
	var (
		from, to int
		w, sum   float64
		ok       bool
	)
	for from = 0; from < n; from++ {
		for to = 0; to < n; to++ {
			if w, ok = m.Weight(from, to); ok {
				sum += math.Abs(w)
			}
		}
	}
	if !finite(sum) {
		return validatorErrorf("ValidateSumBounded", fmt.Errorf("sum of |weight| overflows float64: %w", ErrInvalidWeight))
	}

	return nil
}
