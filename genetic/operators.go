// SPDX-License-Identifier: MIT
//
// operators.go - selection, recombination and mutation.
//
// Both variation operators keep every individual valid: a child that breaks
// an edge is replaced by a copy of its first parent, and a mutation that
// breaks any edge of the resulting route is undone.

package genetic

import "math/rand"

// pickParents returns two distinct individuals from the top pool entries of
// a fitness-sorted population.
func pickParents(pop []Individual, pool int, rng *rand.Rand) (Individual, Individual) {
	if pool > len(pop) {
		pool = len(pop)
	}
	i, j := twoDistinct(pool, rng)
	if rng.Intn(2) == 1 {
		i, j = j, i
	}

	return pop[i], pop[j]
}

// orderCrossover copies p1[start:end) into the child at the same positions
// and fills the remaining slots, left to right, with p2's genes in p2 order.
// The result is a fresh slice; an invalid child falls back to a copy of p1.
//
// Complexity: O(L).
func orderCrossover(p1, p2 []string, s scorer, rng *rand.Rand) []string {
	n := len(p1)
	child := make([]string, n)
	if n < 2 {
		copy(child, p1)
		return child
	}

	start, end := twoDistinct(n, rng)
	placed := make(map[string]bool, end-start)
	for i := start; i < end; i++ {
		child[i] = p1[i]
		placed[p1[i]] = true
	}

	k := 0
	for i := 0; i < n; i++ {
		if i >= start && i < end {
			continue
		}
		for placed[p2[k]] {
			k++
		}
		child[i] = p2[k]
		k++
	}

	if !s.valid(child) {
		copy(child, p1)
	}
	return child
}

// swapMutate swaps two random positions in place and re-checks the whole
// anchored route; the swap is reverted unless every edge still exists.
// It reports whether the swap was kept.
//
// Complexity: O(L).
func swapMutate(genes []string, s scorer, rng *rand.Rand) bool {
	if len(genes) < 2 {
		return false
	}
	i, j := twoDistinct(len(genes), rng)
	genes[i], genes[j] = genes[j], genes[i]
	if s.valid(genes) {
		return true
	}
	genes[i], genes[j] = genes[j], genes[i]

	return false
}
