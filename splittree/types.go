// Package splittree implements the recursive subgraph tree (C4): repeated
// two-colouring of a Γ₂ supergraph (gamma1.Color) into smaller Γ₂ graphs,
// either halving the node count at each level (2-way) or quartering it
// (4-way, implemented as a "preprocessing" colouring pass followed by a
// second colouring of each half), optionally choosing between the two per
// level via the hybrid.Oracle. Recursion bottoms out once a level's node
// count drops to four or fewer.
package splittree

import (
	"github.com/katalvlaran/uc/gamma1"
	"github.com/katalvlaran/uc/gamma2"
)

// Node is one level of the split tree: the Γ₂ graph at this level, the two
// Γ₁ graphs gamma1.Color produced from it, and (unless this is a leaf) the
// next level's Γ₂ graphs and their own split-tree nodes.
//
// Gamma1Left/Gamma1Right intentionally swap the natural (first, second)
// return order of gamma1.Color: the reference construction assigns
// gamma1_right = <Color's first return value>, gamma1_left = <second>, and
// everything downstream (the parity sweep in particular) depends on that
// assignment, so it is kept exactly as observed.
type Node struct {
	Graph       *gamma2.Graph
	Gamma1Left  *gamma1.Graph
	Gamma1Right *gamma1.Graph
	SubLeft     *Node
	SubRight    *Node
}

// IsLeaf reports whether this node is a base case (no further recursion).
func (n *Node) IsLeaf() bool {
	return n.SubLeft == nil && n.SubRight == nil
}
