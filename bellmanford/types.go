// SPDX-License-Identifier: MIT

// Package bellmanford defines the result sentinels, error set and functional
// options for the Bellman-Ford single-source shortest-path solver.
package bellmanford

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortestpath/matrix"
)

// None marks "no predecessor" in a predecessor slice. It lies outside every
// valid vertex range [0, V); indexing a slice with it panics rather than
// silently reading a vertex.
const None = -1

// Unreached is the distance reported for vertices not reachable from the source.
var Unreached = math.Inf(1)

// WeightMatrix is the read-only square matrix Solve consumes.
// *matrix.Weights implements it.
type WeightMatrix interface {
	// Order returns the number of vertices V.
	Order() int
	// Weight returns the weight of edge from→to and whether the edge is present.
	Weight(from, to int) (float64, bool)
}

// Sentinel errors returned by Solve.
var (
	// ErrInvalidInput is joined to every input-validation failure, so callers
	// can tell "bad arguments" from ErrNegativeCycle with a single errors.Is.
	ErrInvalidInput = errors.New("bellmanford: invalid input")

	// ErrNilMatrix indicates that a nil WeightMatrix was passed.
	ErrNilMatrix = errors.New("bellmanford: weight matrix is nil")

	// ErrEmptyGraph indicates a matrix of order 0.
	ErrEmptyGraph = errors.New("bellmanford: graph has no vertices")

	// ErrSourceOutOfRange indicates a source index outside [0, V).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrSelfLoop indicates a present diagonal cell.
	ErrSelfLoop = matrix.ErrSelfLoop

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = matrix.ErrInvalidWeight

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	// Solve returns it as a *NegativeCycleError.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// invalidInput joins cause to ErrInvalidInput.
func invalidInput(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, cause)
}

// NegativeCycleError reports that the distances did not reach a fixed point
// after V-1 passes, or that a relaxation overflowed float64 before then.
//
// From→To is the first edge (in index order) that still relaxed during the
// verification pass, or the edge whose relaxation overflowed. Cycle is one negative cycle reachable from the source,
// closed and rotated to start at its smallest vertex, e.g. [1 2 1]. Cycle is
// nil only if it could not be recovered from the predecessor chain.
type NegativeCycleError struct {
	From, To int
	Cycle    []int
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrNegativeCycle.Error())
	sb.WriteString(": edge ")
	sb.WriteString(strconv.Itoa(e.From))
	sb.WriteString("→")
	sb.WriteString(strconv.Itoa(e.To))
	sb.WriteString(" still relaxes")
	if len(e.Cycle) > 0 {
		sb.WriteString(", cycle ")
		for i, v := range e.Cycle {
			if i > 0 {
				sb.WriteString("→")
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}

// Unwrap lets errors.Is(err, ErrNegativeCycle) match.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// PassFunc observes the solver after each relaxation pass.
// pass counts from 1; relaxed is the number of successful relaxations in that
// pass; dist is a read-only view of the working distances, valid only for the
// duration of the call.
type PassFunc func(pass, relaxed int, dist []float64)

// Options configures Solve.
//
// EarlyExit - stop relaxing once a pass changes nothing (the fixed point is
// reached and the remaining passes would be no-ops). Default true.
// OnPass    - optional per-pass observer. Default nil.
type Options struct {
	EarlyExit bool
	OnPass    PassFunc
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithoutEarlyExit forces exactly V-1 relaxation passes even after the
// distances stop changing. Results are identical; only OnPass sees the
// difference.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// WithOnPass installs fn as the per-pass observer. A nil fn has no effect.
func WithOnPass(fn PassFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// DefaultOptions returns the defaults: early exit on, no observer.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
		OnPass:    nil,
	}
}
