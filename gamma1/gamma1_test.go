package gamma1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uc/gamma1"
	"github.com/katalvlaran/uc/gamma2"
)

// buildChain returns a Γ₂ graph: 1,2 inputs feeding node 3, node 3 feeding
// node 4 — three edges total.
func buildChain(t *testing.T) *gamma2.Graph {
	t.Helper()
	g := gamma2.NewGraphSized(4)
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))
	return g
}

func collectEdges(g *gamma1.Graph) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for id := 1; id <= g.N(); id++ {
		n := g.Node(id)
		if n.Child != 0 {
			out[[2]int{n.ID, n.Child}] = true
		}
	}
	return out
}

func TestColor_PartitionsEveryEdgeExactlyOnce(t *testing.T) {
	g := buildChain(t)
	g1, g2, err := gamma1.Color(g, 0)
	require.NoError(t, err)

	e1 := collectEdges(g1)
	e2 := collectEdges(g2)
	for k := range e1 {
		assert.Falsef(t, e2[k], "edge %v coloured into both graphs", k)
	}

	want := map[[2]int]bool{{1, 3}: true, {2, 3}: true, {3, 4}: true}
	got := make(map[[2]int]bool)
	for k := range e1 {
		got[k] = true
	}
	for k := range e2 {
		got[k] = true
	}
	assert.Equal(t, want, got)
}

func TestColor_DegreeBoundsHold(t *testing.T) {
	g := buildChain(t)
	g1, g2, err := gamma1.Color(g, 0)
	require.NoError(t, err)

	for _, gr := range []*gamma1.Graph{g1, g2} {
		seenAsParent := make(map[int]bool)
		seenAsChild := make(map[int]bool)
		for id := 1; id <= gr.N(); id++ {
			n := gr.Node(id)
			if n.Child != 0 {
				assert.False(t, seenAsParent[n.ID])
				seenAsParent[n.ID] = true
				assert.False(t, seenAsChild[n.Child])
				seenAsChild[n.Child] = true
			}
		}
	}
}
