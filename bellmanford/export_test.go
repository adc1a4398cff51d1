// SPDX-License-Identifier: MIT

package bellmanford

// Test bridge: exposes unexported helpers to the bellmanford_test package only.

// Adjacency exposes adjacency.
func Adjacency(w WeightMatrix, v int) []int { return adjacency(w, v) }

// CanonicalCycle exposes canonicalCycle.
func CanonicalCycle(back []int) []int { return canonicalCycle(back) }
