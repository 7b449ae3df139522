// Package embed implements the edge embedder (C8): it programs two
// eug.Network permutation channels over the root split-tree level's pole
// count, one per gamma1.Color colouring, each realizing every real edge of
// its colouring (extended to a full permutation over the remaining,
// edge-less positions by completePermutation).
//
// Every pole feeds its own value into both channels at its own position
// (the reverse-Y duplication §3's switch table describes) and every edge
// a->b therefore reappears, intact, at the child's position on whichever
// channel embeds it — this is what ucemit reads back to wire each gate's
// two inputs, instead of referencing the originating Γ₂ graph's parent
// pointers directly. See DESIGN.md's embed entry for why this embeds only
// the root level rather than walking the full recursive block/recursion-
// point skeleton deeper levels would add.
package embed

import (
	"fmt"

	"github.com/katalvlaran/uc/eug"
	"github.com/katalvlaran/uc/gamma1"
	"github.com/katalvlaran/uc/splittree"
)

// Embedding is the programmed two-channel EUG realizing root's colouring:
// Left and Right are permutation networks over the same N poles as
// root.Graph, each programmed so that for every recorded edge a->b in the
// correspondingly-named Γ₁ graph, the network routes position a-1 to
// position b-1.
type Embedding struct {
	N          int
	Left       *eug.Network
	Right      *eug.Network
	GammaLeft  *gamma1.Graph
	GammaRight *gamma1.Graph
}

// Embed programs root's two channels and confirms the whole split tree
// bottoms out within the base case every leaf must satisfy (P1).
//
// Complexity: O(N log N) for the root's two networks.
func Embed(root *splittree.Node) (*Embedding, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil split-tree root", ErrEmbeddingImpossible)
	}
	if err := checkBaseCase(root); err != nil {
		return nil, err
	}

	n := root.Graph.N()
	left := eug.BuildNetwork(n)
	right := eug.BuildNetwork(n)
	if err := left.Program(completePermutation(root.Gamma1Left)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingImpossible, err)
	}
	if err := right.Program(completePermutation(root.Gamma1Right)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingImpossible, err)
	}

	return &Embedding{
		N:          n,
		Left:       left,
		Right:      right,
		GammaLeft:  root.Gamma1Left,
		GammaRight: root.Gamma1Right,
	}, nil
}

// checkBaseCase confirms every leaf of the split tree rooted at n has
// dropped to the four-or-fewer-pole base case splittree.Build promises.
func checkBaseCase(n *splittree.Node) error {
	if n == nil {
		return nil
	}
	if n.IsLeaf() && n.Graph.N() > 4 {
		return fmt.Errorf("%w: leaf of size %d exceeds the base case", ErrEmbeddingImpossible, n.Graph.N())
	}
	if err := checkBaseCase(n.SubLeft); err != nil {
		return err
	}
	return checkBaseCase(n.SubRight)
}
