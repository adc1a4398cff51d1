// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/matrix"
)

// rawReader is a Reader backed by a map; it can hold values
// *matrix.Weights refuses, such as NaN.
type rawReader struct {
	n     int
	cells map[[2]int]float64
}

func (r rawReader) Order() int { return r.n }
func (r rawReader) Weight(from, to int) (float64, bool) {
	w, ok := r.cells[[2]int{from, to}]

	return w, ok
}

func TestValidateIndex(t *testing.T) {
	t.Parallel()
	assert.NoError(t, matrix.ValidateIndex(3, 0))
	assert.NoError(t, matrix.ValidateIndex(3, 2))
	assert.ErrorIs(t, matrix.ValidateIndex(3, 3), matrix.ErrOutOfRange)
	assert.ErrorIs(t, matrix.ValidateIndex(3, -1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, matrix.ValidateIndex(0, 0), matrix.ErrOutOfRange)
}

func TestValidateNoSelfLoops(t *testing.T) {
	t.Parallel()
	w, err := matrix.NewWeights(3)
	require.NoError(t, err)
	require.NoError(t, w.SetEdge(0, 1, -1))
	assert.NoError(t, matrix.ValidateNoSelfLoops(w))

	require.NoError(t, w.SetEdge(1, 1, 0))
	err = matrix.ValidateNoSelfLoops(w)
	assert.ErrorIs(t, err, matrix.ErrSelfLoop)
	assert.Contains(t, err.Error(), "vertex 1")

	assert.ErrorIs(t, matrix.ValidateNoSelfLoops(nil), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()
	ok := rawReader{n: 2, cells: map[[2]int]float64{{0, 1}: 3}}
	assert.NoError(t, matrix.ValidateFinite(ok))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		r := rawReader{n: 2, cells: map[[2]int]float64{{0, 1}: 3, {1, 0}: bad}}
		err := matrix.ValidateFinite(r)
		assert.ErrorIs(t, err, matrix.ErrInvalidWeight)
		assert.Contains(t, err.Error(), "edge 1→0")
	}

	assert.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateSumBounded(t *testing.T) {
	t.Parallel()
	// Large weights whose absolute sum still fits.
	ok := rawReader{n: 3, cells: map[[2]int]float64{
		{0, 1}: math.MaxFloat64 / 4,
		{1, 2}: -math.MaxFloat64 / 4,
	}}
	assert.NoError(t, matrix.ValidateSumBounded(ok))

	// Opposite signs must not cancel: |+Max| + |-Max| overflows.
	bad := rawReader{n: 3, cells: map[[2]int]float64{
		{0, 1}: -math.MaxFloat64,
		{1, 2}: math.MaxFloat64,
	}}
	err := matrix.ValidateSumBounded(bad)
	assert.ErrorIs(t, err, matrix.ErrInvalidWeight)
	assert.Contains(t, err.Error(), "overflows")

	assert.ErrorIs(t, matrix.ValidateSumBounded(nil), matrix.ErrNilMatrix)
}
