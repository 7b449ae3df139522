package splittree

import "github.com/katalvlaran/uc/gamma1"

// FixParity walks the split tree and corrects the one parity-ambiguous case
// addEdges' pairing can produce: when a level's Γ₁ graph has even length,
// its last one or two nodes' parent edges can map onto the wrong half of
// the already-built next level, in which case that child's own Gamma1Left
// and Gamma1Right (and SubLeft/SubRight) must swap to stay consistent with
// the edges the parent level just traced (P6, the split tree's
// fixed-point consistency check).
//
// Grounded 1:1 on DAG_Gamma2::check_correct_subgraphs /
// DAG_Gamma2::check_one_subgraph.
func FixParity(root *Node) {
	if root == nil || root.Graph.N() <= 4 {
		return
	}
	if root.Gamma1Left != nil && root.Gamma1Left.N()%2 == 0 && root.SubLeft != nil {
		checkOneSubgraph(root.SubLeft, root.Gamma1Left)
	}
	if root.Gamma1Right != nil && root.Gamma1Right.N()%2 == 0 && root.SubRight != nil {
		checkOneSubgraph(root.SubRight, root.Gamma1Right)
	}
	FixParity(root.SubRight)
	FixParity(root.SubLeft)
}

// checkOneSubgraph checks whether sub's own left/right split is consistent
// with how parentG1's last (and second-to-last) nodes' parent edges map
// into it, and swaps sub's two halves if not.
func checkOneSubgraph(sub *Node, parentG1 *gamma1.Graph) {
	nodeNum := parentG1.N()
	if nodeNum%2 != 0 {
		return
	}

	if last := parentG1.Node(nodeNum); last != nil && last.Parent != 0 {
		index2 := nodeNum - 1
		index1 := last.Parent - 1
		if index1/2 <= index2/2-1 {
			a := sub.Gamma1Left.Node(index1/2 + 1)
			b := sub.Gamma1Left.Node(index2/2 - 1 + 1)
			c := sub.Gamma1Right.Node(index1/2 + 1)
			d := sub.Gamma1Right.Node(index2/2 - 1 + 1)
			if a != nil && a.Child != 0 && b != nil && a.Child == b.ID &&
				!(c != nil && d != nil && c.Child == d.ID) {
				swapHalves(sub)
			}
		}
	}
	if last := parentG1.Node(nodeNum - 1); last != nil && last.Parent != 0 {
		index2 := nodeNum - 2
		index1 := last.Parent - 1
		if index1/2 <= index2/2-1 {
			a := sub.Gamma1Right.Node(index1/2 + 1)
			b := sub.Gamma1Right.Node(index2/2 - 1 + 1)
			c := sub.Gamma1Left.Node(index1/2 + 1)
			d := sub.Gamma1Left.Node(index2/2 - 1 + 1)
			if a != nil && a.Child != 0 && b != nil && a.Child == b.ID &&
				!(c != nil && d != nil && c.Child == d.ID) {
				swapHalves(sub)
			}
		}
	}
}

func swapHalves(sub *Node) {
	sub.Gamma1Left, sub.Gamma1Right = sub.Gamma1Right, sub.Gamma1Left
	sub.SubLeft, sub.SubRight = sub.SubRight, sub.SubLeft
}
