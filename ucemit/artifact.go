package ucemit

import (
	"fmt"

	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/eug"
	"github.com/katalvlaran/uc/gamma2"
)

// Line is one emitted switch: a circuit input (Kind "C"), a routing switch
// from one of the two embedded channels (Kind "X", two inputs and two
// output wires, Wire and Wire2), a gate switch (Kind "U", carrying its
// canonical truth table and the two channel-delivered wires in
// left-then-right order), or a declared output's terminal duplicate-select
// switch (Kind "Y").
type Line struct {
	Kind   string
	Wire   int
	Wire2  int // second output wire, X lines only
	Arity  int
	Table  [4]bool
	Swap   bool // realized control bit, X/Y lines only
	Inputs []int
}

// Artifact is a flattened, directly evaluable universal circuit: Lines in
// emission order, plus the wire numbers declared as outputs.
type Artifact struct {
	Lines   []Line
	Outputs []int
}

// Build flattens g's embedded universal circuit into an Artifact: e's two
// programmed channel networks realize every edge of g's split (the two
// colourings Embed programmed them from), and each pole's own line reads
// its parents' values back from whichever channel carries that edge,
// rather than from the parent's wire directly — this is what actually
// constructs a universal circuit out of g instead of re-serializing it.
//
// Wire numbering: pole id's own wire is id-1, so primary inputs land on the
// first wire numbers (§4.9) when the gate list declares them before every
// gate; an input declared after a gate keeps wire id-1. Every switch the two
// channels flatten to, and every declared output's terminal switch, claims
// fresh wire numbers starting at g.N().
//
// Complexity: O(N log N)
func Build(g *gamma2.Graph, e *embed.Embedding) (*Artifact, error) {
	if _, err := Number(g); err != nil {
		return nil, err
	}
	n := g.N()
	if e.N != n {
		return nil, fmt.Errorf("%w: embedding sized for %d poles, graph has %d", ErrUnknownWire, e.N, n)
	}

	next := n
	channelIn := make([]int, n)
	for id := 1; id <= n; id++ {
		channelIn[id-1] = id - 1
	}
	leftOut, leftGates := e.Left.Flatten(channelIn, &next)
	rightOut, rightGates := e.Right.Flatten(channelIn, &next)

	art := &Artifact{}
	for id := 1; id <= n; id++ {
		if g.Node(id).Arity == 0 {
			art.Lines = append(art.Lines, Line{Kind: "C", Wire: id - 1})
		}
	}
	for _, gt := range leftGates {
		art.Lines = append(art.Lines, xLine(gt))
	}
	for _, gt := range rightGates {
		art.Lines = append(art.Lines, xLine(gt))
	}

	for id := 1; id <= n; id++ {
		node := g.Node(id)
		if node.Arity == 0 {
			continue
		}
		var a, b int
		if node.Arity == 1 {
			parent := node.LeftParent
			if parent == 0 {
				parent = node.RightParent
			}
			a = channelValue(e, leftOut, rightOut, id, parent)
			b = a
		} else {
			a = channelValue(e, leftOut, rightOut, id, node.LeftParent)
			b = channelValue(e, leftOut, rightOut, id, node.RightParent)
		}
		art.Lines = append(art.Lines, Line{
			Kind:   "U",
			Wire:   id - 1,
			Arity:  node.Arity,
			Table:  node.Table,
			Inputs: []int{a, b},
		})
	}

	for id := 1; id <= n; id++ {
		node := g.Node(id)
		if !node.IsOutput {
			continue
		}
		own := id - 1
		out := next
		next++
		art.Lines = append(art.Lines, Line{Kind: "Y", Wire: out, Inputs: []int{own, own}})
		art.Outputs = append(art.Outputs, out)
	}

	return art, nil
}

func xLine(gt eug.Gate) Line {
	return Line{
		Kind:   "X",
		Wire:   gt.Out[0],
		Wire2:  gt.Out[1],
		Swap:   gt.Swap,
		Inputs: []int{gt.In[0], gt.In[1]},
	}
}

// channelValue returns the wire carrying parent's value as it arrives at
// child's own position, reading whichever of e's two channels realizes
// the edge parent->child in its underlying colouring — exactly one of the
// two always does, since Color's two colourings partition every Γ₂ edge.
func channelValue(e *embed.Embedding, leftOut, rightOut []int, child, parent int) int {
	pos := child - 1
	if node := e.GammaLeft.Node(child); node != nil && node.Parent == parent {
		return leftOut[pos]
	}
	return rightOut[pos]
}
