// Package ucemit flattens a compiled, embedded universal circuit — the
// Γ₂ graph's poles plus embed.Embed's two programmed channel networks —
// into the emitted circuit and programming files (§6, C9), and evaluates
// the result.
//
// Each pole keeps its Γ₂ node id (minus one) as its own wire number, so
// primary inputs occupy the first wire numbers (§4.9) when the gate list
// declares them before every gate, and an input declared later keeps wire
// id-1; the two channel networks flatten to fresh X-switch wires above that, and
// every declared output gets one more fresh wire for its terminal Y
// switch. A gate pole's two inputs are read back from whichever channel
// carries that particular parent edge (embed.Embedding.GammaLeft/Right
// record which), never from the parent's own wire directly — that
// indirection through the embedded channels is what makes the emitted
// artifact an actual universal circuit rather than the source graph
// re-serialized.
package ucemit

import (
	"github.com/katalvlaran/uc/gamma2"
)

// Visitation state for the DFS walk, mirroring the teacher's White/Gray/
// Black convention.
const (
	white = 0
	gray  = 1
	black = 2
)

// numberer computes a topological wire order over a Γ₂ graph's node ids.
type numberer struct {
	g     *gamma2.Graph
	state []int // state[id-1]
	order []int // recorded post-order node ids
}

// Number returns g's node ids in topological order (every node after its
// parents). Returns ErrCycleDetected if g is not a DAG.
//
// Grounded on dfs.TopologicalSort's Gray/Black visitor-state walk.
// Complexity: O(N)
func Number(g *gamma2.Graph) ([]int, error) {
	n := g.N()
	num := &numberer{
		g:     g,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for id := 1; id <= n; id++ {
		if num.state[id-1] == white {
			if err := num.visit(id); err != nil {
				return nil, err
			}
		}
	}
	return num.order, nil
}

func (num *numberer) visit(id int) error {
	if num.state[id-1] == gray {
		return ErrCycleDetected
	}
	if num.state[id-1] == black {
		return nil
	}
	num.state[id-1] = gray

	node := num.g.Node(id)
	for _, parent := range node.Parents() {
		if err := num.visit(parent); err != nil {
			return err
		}
	}

	num.state[id-1] = black
	num.order = append(num.order, id)

	return nil
}
