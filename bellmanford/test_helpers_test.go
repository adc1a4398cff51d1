// SPDX-License-Identifier: MIT
// Package bellmanford_test contains shared fixtures and checks.

package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/bellmanford"
	"github.com/katalvlaran/shortestpath/matrix"
)

// Short aliases keep the matrix literals readable.
var (
	x = matrix.NoEdge
	e = matrix.Edge
)

// positiveRows is the 5-vertex non-negative fixture:
// 0→1:10, 0→4:3, 1→2:2, 1→4:1, 2→3:7, 3→2:9, 4→1:4, 4→2:8, 4→3:2.
func positiveRows() [][]matrix.Cell {
	return [][]matrix.Cell{
		{x, e(10), x, x, e(3)},
		{x, x, e(2), x, e(1)},
		{x, x, x, e(7), x},
		{x, x, e(9), x, x},
		{x, e(4), e(8), e(2), x},
	}
}

// negativeRows has negative edges but no negative cycle:
// 0→1:-1, 0→2:4, 1→2:3, 1→3:2, 1→4:2, 3→1:1, 3→2:5, 4→3:-3.
func negativeRows() [][]matrix.Cell {
	return [][]matrix.Cell{
		{x, e(-1), e(4), x, x},
		{x, x, e(3), e(2), e(2)},
		{x, x, x, x, x},
		{x, e(1), e(5), x, x},
		{x, x, x, e(-3), x},
	}
}

// cycleRows is negativeRows plus 2→1:-6, closing the cycle 1→2→1 of weight -3.
func cycleRows() [][]matrix.Cell {
	rows := negativeRows()
	rows[2][1] = e(-6)

	return rows
}

// mustWeights builds a matrix from rows or fails the test.
func mustWeights(t testing.TB, rows [][]matrix.Cell) *matrix.Weights {
	t.Helper()
	w, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return w
}

// requireShortestPathTree checks the fixed-point invariants of a successful solve:
//   - pred[source] == None and dist[source] == 0;
//   - for x with p = pred[x] != None: edge p→x exists and dist[x] == dist[p] + w[p][x];
//   - no edge from a reached vertex can improve any distance;
//   - walking pred from any reached x ends at source within V-1 steps.
func requireShortestPathTree(t *testing.T, w *matrix.Weights, source int, pred []int, dist []float64) {
	t.Helper()
	n := w.Order()
	require.Len(t, pred, n)
	require.Len(t, dist, n)
	require.Equal(t, bellmanford.None, pred[source])
	require.Equal(t, 0.0, dist[source])

	for v := 0; v < n; v++ {
		if p := pred[v]; p != bellmanford.None {
			wt, ok := w.Weight(p, v)
			require.True(t, ok, "pred[%d]=%d but edge %d→%d is absent", v, p, p, v)
			require.Equal(t, dist[p]+wt, dist[v], "dist[%d] != dist[%d] + w", v, p)
		}
		if dist[v] == bellmanford.Unreached {
			require.Equal(t, bellmanford.None, pred[v], "unreached %d has a predecessor", v)
			continue
		}
		for to := 0; to < n; to++ {
			if wt, ok := w.Weight(v, to); ok {
				require.False(t, dist[v]+wt < dist[to], "edge %d→%d still relaxes", v, to)
			}
		}
		steps := 0
		for cur := v; cur != source; cur = pred[cur] {
			require.NotEqual(t, bellmanford.None, pred[cur], "chain from %d breaks at %d", v, cur)
			steps++
			require.Less(t, steps, n, "chain from %d longer than V-1", v)
		}
	}
}

// requireNegativeCycle checks that cycle is closed, follows present edges and
// has a strictly negative total weight.
func requireNegativeCycle(t *testing.T, w *matrix.Weights, cycle []int) {
	t.Helper()
	require.GreaterOrEqual(t, len(cycle), 3, "closed cycle needs ≥2 distinct vertices")
	require.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle not closed")

	total := 0.0
	for i := 0; i+1 < len(cycle); i++ {
		wt, ok := w.Weight(cycle[i], cycle[i+1])
		require.True(t, ok, "cycle uses absent edge %d→%d", cycle[i], cycle[i+1])
		total += wt
	}
	require.Less(t, total, 0.0, "cycle %v is not negative", cycle)
}
