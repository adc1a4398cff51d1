// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every constructor, accessor and validator in this package returns one of
// these sentinels, possibly wrapped with call-site context. Callers match
// them with errors.Is. No exported function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so that wrapped chains stay
// greppable. Context is attached with fmt.Errorf("ctx: %w", ErrX).
//
// ERROR PRIORITY (enforced in tests):
// dimensions -> shape -> index -> weight value -> structural (self-loop).

var (
	// ErrInvalidDimensions indicates that a requested order is not positive,
	// or that a literal has no rows at all.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a row literal is ragged or not V×V.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a vertex index is outside [0, Order()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidWeight marks a NaN or ±Inf edge weight. Weights must be finite;
	// absence of an edge is expressed with NoEdge, never with a number.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrSelfLoop indicates a present diagonal cell w[v][v].
	ErrSelfLoop = errors.New("matrix: self-loop present")

	// ErrNilMatrix indicates a nil *Weights receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
