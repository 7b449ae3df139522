package embed

import "github.com/katalvlaran/uc/gamma1"

// completePermutation extends g's recorded parent->child edges into a full
// permutation of [0, g.N()): position id-1 maps to child-1 for every node
// with a recorded Child, and every remaining (edge-less) position is paired
// off against a remaining unused target, in increasing order, so the result
// is always a valid bijection regardless of how sparse g is.
//
// g is a Γ₁ graph (max in/out-degree 1), so its recorded edges are already
// a partial injection — no id appears as two different nodes' Child, and no
// two nodes record the same Child — which is exactly what makes completing
// it to a full permutation always possible.
func completePermutation(g *gamma1.Graph) []int {
	n := g.N()
	perm := make([]int, n)
	used := make([]bool, n)
	for i := range perm {
		perm[i] = -1
	}
	for id := 1; id <= n; id++ {
		if child := g.Node(id).Child; child != 0 {
			perm[id-1] = child - 1
			used[child-1] = true
		}
	}

	var freeDomain, freeRange []int
	for i, target := range perm {
		if target == -1 {
			freeDomain = append(freeDomain, i)
		}
	}
	for i := 0; i < n; i++ {
		if !used[i] {
			freeRange = append(freeRange, i)
		}
	}
	for k, i := range freeDomain {
		perm[i] = freeRange[k]
	}
	return perm
}
