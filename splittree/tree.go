package splittree

import (
	"github.com/katalvlaran/uc/gamma1"
	"github.com/katalvlaran/uc/gamma2"
	"github.com/katalvlaran/uc/hybrid"
)

// Build recurses gamma1.Color over g (C4), returning the root of the split
// tree. fourWay selects quartering (true) or halving (false) for the root
// level; useHybrid, if set, consults oracle at every level to decide
// whether that level should actually halve or quarter, overriding fourWay
// recursively. prevNodeNum is the node count one level up (0 at the top),
// needed by gamma1.Color's parity correction.
//
// Grounded 1:1 on DAG_Gamma2::create_subgraphs: the level-sizing arithmetic,
// the preprocessing/four-way state machine, and the recursion-or-leaf
// decision are ported without simplification.
//
// Complexity: O(N log N) in the number of Γ₂ nodes.
func Build(g *gamma2.Graph, prevNodeNum int, preprocessing, fourWay, useHybrid bool, oracle *hybrid.Oracle) (*Node, error) {
	n := g.N()
	if n == 0 {
		return nil, ErrTooFewNodes
	}

	g1First, g1Second, err := gamma1.Color(g, prevNodeNum)
	if err != nil {
		return nil, err
	}
	node := &Node{
		Graph:       g,
		Gamma1Right: g1First,
		Gamma1Left:  g1Second,
	}

	if n <= 4 && (preprocessing || !fourWay) {
		return node, nil
	}

	fourWayLeft, fourWayRight := fourWay, fourWay
	preprocessingLeft, preprocessingRight := preprocessing, preprocessing

	leftNum := node.Gamma1Left.N()
	rightNum := node.Gamma1Right.N()
	leftNodeNum := n / 2
	rightNodeNum := n / 2

	if useHybrid && fourWay && preprocessing {
		if oracle.NextK(uint32(leftNum)) == 2 {
			fourWayLeft = false
		}
		if oracle.NextK(uint32(rightNum)) == 2 {
			fourWayRight = false
		}
	}

	if leftNum%2 == 0 {
		leftNodeNum--
		rightNodeNum--
	}
	if leftNum%2 == 1 && rightNum%2 == 0 {
		rightNodeNum--
	}
	if preprocessingLeft && fourWayLeft {
		leftNodeNum++
	}
	if preprocessingRight && fourWayRight {
		rightNodeNum++
	}

	nextPreprocessingLeft := !preprocessingLeft
	nextPreprocessingRight := !preprocessingRight
	nextFourWayLeft := fourWayLeft
	nextFourWayRight := fourWayRight

	if useHybrid {
		if !fourWayLeft || !preprocessingLeft {
			if oracle.NextK(uint32(leftNodeNum)) == 4 {
				nextFourWayLeft, nextPreprocessingLeft = true, true
			} else {
				nextFourWayLeft, nextPreprocessingLeft = false, true
			}
		}
		if !fourWayRight || !preprocessingRight {
			if oracle.NextK(uint32(rightNodeNum)) == 4 {
				nextFourWayRight, nextPreprocessingRight = true, true
			} else {
				nextFourWayRight, nextPreprocessingRight = false, true
			}
		}
	}

	if (leftNum > 4 && (preprocessingLeft || !fourWay || !useHybrid)) || (!preprocessingLeft && fourWay) {
		subLeft := gamma2.NewGraphSized(leftNodeNum)
		if err := addEdges(subLeft, node.Gamma1Left, preprocessingLeft, fourWayLeft); err != nil {
			return nil, err
		}
		child, err := Build(subLeft, leftNum, nextPreprocessingLeft, nextFourWayLeft, useHybrid, oracle)
		if err != nil {
			return nil, err
		}
		node.SubLeft = child
	}

	if (rightNum > 4 && (preprocessingRight || !fourWay || !useHybrid)) || (!preprocessingRight && fourWay) {
		subRight := gamma2.NewGraphSized(rightNodeNum)
		if err := addEdges(subRight, node.Gamma1Right, preprocessingRight, fourWayRight); err != nil {
			return nil, err
		}
		child, err := Build(subRight, rightNum, nextPreprocessingRight, nextFourWayRight, useHybrid, oracle)
		if err != nil {
			return nil, err
		}
		node.SubRight = child
	}

	return node, nil
}

// addEdges compresses a Γ₁ path/cycle graph into the next level's Γ₂ graph
// by pairing adjacent array positions (2i-1, 2i) into new node i and
// following each pair member's Γ₁ child pointer to find which new node it
// connects to.
//
// Grounded 1:1 on DAG_Gamma2::add_edges.
func addEdges(next *gamma2.Graph, g1 *gamma1.Graph, preprocessing, fourWay bool) error {
	n := g1.N()
	for i := 1; i <= n; i += 2 {
		first := g1.Node(i)
		var second *gamma1.Node
		if i+1 <= n {
			second = g1.Node(i + 1)
		}
		newID := (i-1)/2 + 1

		if first != nil && first.Child != 0 && first.Child != first.ID && (second == nil || first.Child != second.ID) {
			targetID := (first.Child-1)/2 + 1
			if !(preprocessing && fourWay) {
				targetID--
			}
			if err := next.AddEdge(newID, targetID); err != nil {
				return err
			}
		}
		if second != nil && second.Child != 0 && second.Child != second.ID {
			targetID := (second.Child-1)/2 + 1
			if !(preprocessing && fourWay) {
				targetID--
			}
			if err := next.AddEdge(newID, targetID); err != nil {
				return err
			}
		}
	}
	return nil
}
