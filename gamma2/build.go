package gamma2

import (
	"github.com/katalvlaran/uc/gate"
)

// Build constructs a Γ₂ supergraph from a normalized gate.List (C2).
//
// One Γ₂ node is created per gate, in declaration order, so Γ₂ node ids
// match gate.Gate.ID exactly. Edges are added in the same order the
// reference reader uses: for an arity-2 gate, the *second* declared input
// is wired before the first. Combined with AddEdge's left-slot-first
// priority, this means a fresh arity-2 node's second input claims
// left_parent and its first input claims right_parent — which is exactly
// the case the canonicalisation below accounts for (SPEC_FULL.md section C
// item 4).
//
// Once both (or the one) parent edges are in place, the node's truth table
// is canonicalised relative to which slot each DECLARED input landed in:
//   - arity 2: if the first declared input landed in left_parent, the
//     table is stored as declared (f0,f1,f2,f3); if it landed in
//     right_parent instead, the stored table is (f0,f2,f1,f3).
//   - arity 1: the table is stored as (c0,c0,c1,c1) if the single declared
//     input landed in left_parent, or (c0,c1,c0,c1) if it landed in
//     right_parent.
//
// Complexity: O(len(Gates))
func Build(l *gate.List) (*Graph, error) {
	g := NewGraph(len(l.Gates))
	for _, gt := range l.Gates {
		if _, err := g.AddNode(gt.Arity); err != nil {
			return nil, err
		}
	}
	for _, gt := range l.Gates {
		switch gt.Arity {
		case 0:
			// primary input: no parent edges to add.
		case 1:
			if err := g.AddEdge(gt.Inputs[0], gt.ID); err != nil {
				return nil, err
			}
		case 2:
			// second input wired first, matching the reference reader.
			if err := g.AddEdge(gt.Inputs[1], gt.ID); err != nil {
				return nil, err
			}
			if err := g.AddEdge(gt.Inputs[0], gt.ID); err != nil {
				return nil, err
			}
		default:
			return nil, ErrBadArity
		}
	}
	for _, gt := range l.Gates {
		if gt.Arity == 0 {
			continue
		}
		n := g.Node(gt.ID)
		n.Table = canonicalize(gt, n)
	}
	for _, id := range l.Outputs {
		n := g.Node(id)
		if n != nil {
			n.IsOutput = true
		}
	}
	return g, nil
}

// canonicalize derives the stored (left_parent, right_parent)-relative
// truth table from the raw declared-order table, given where each declared
// input actually landed once AddEdge's slot-filling ran.
func canonicalize(gt *gate.Gate, n *Node) [4]bool {
	t := gt.Table
	switch gt.Arity {
	case 1:
		firstInLeft := n.LeftParent == gt.Inputs[0]
		if firstInLeft {
			return [4]bool{t[0], t[0], t[2], t[2]}
		}
		return [4]bool{t[0], t[2], t[0], t[2]}
	case 2:
		firstInLeft := n.LeftParent == gt.Inputs[0]
		if firstInLeft {
			return t
		}
		return [4]bool{t[0], t[2], t[1], t[3]}
	default:
		return t
	}
}
