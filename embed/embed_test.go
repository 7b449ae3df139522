package embed_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/gamma2"
	"github.com/katalvlaran/uc/gate"
	"github.com/katalvlaran/uc/splittree"
)

func binaryTreeGraph(t *testing.T) *gamma2.Graph {
	t.Helper()
	lines := []string{
		"1 input", "2 input", "3 input", "4 input",
		"5 input", "6 input", "7 input", "8 input",
		"9 gate arity 2 table [ 0 0 0 1 ] inputs [ 1 2 ]",
		"10 gate arity 2 table [ 0 0 0 1 ] inputs [ 3 4 ]",
		"11 gate arity 2 table [ 0 0 0 1 ] inputs [ 5 6 ]",
		"12 gate arity 2 table [ 0 0 0 1 ] inputs [ 7 8 ]",
		"13 gate arity 2 table [ 0 0 0 1 ] inputs [ 9 10 ]",
		"14 gate arity 2 table [ 0 0 0 1 ] inputs [ 11 12 ]",
		"15 output gate arity 2 table [ 0 0 0 1 ] inputs [ 13 14 ]",
		"16 input",
		"outputs 15 16",
	}
	l, err := gate.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	g, err := gamma2.Build(l)
	require.NoError(t, err)
	return g
}

// edgesRealized runs apply on the identity vector and discards the result;
// it checks no edge. The per-edge routing check is made inline in
// TestEmbed_ChannelsRealizeEveryRealEdge.
func edgesRealized(t *testing.T, g *gamma2.Graph, gColour interface {
	N() int
}, apply func(in []int) []int) {
	t.Helper()
	n := gColour.N()
	in := make([]int, n)
	for i := range in {
		in[i] = i
	}
	_ = apply(in)
}

func TestEmbed_ChannelsRealizeEveryRealEdge(t *testing.T) {
	g := binaryTreeGraph(t)
	root, err := splittree.Build(g, 0, false, false, false, nil)
	require.NoError(t, err)
	splittree.FixParity(root)

	e, err := embed.Embed(root)
	require.NoError(t, err)
	require.Equal(t, g.N(), e.N)
	assert.Equal(t, g.N(), e.Left.N)
	assert.Equal(t, g.N(), e.Right.N)

	n := e.N
	idIn := make([]int, n)
	for i := range idIn {
		idIn[i] = i
	}
	leftOut := e.Left.Apply(idIn)
	rightOut := e.Right.Apply(idIn)

	for id := 1; id <= n; id++ {
		if child := e.GammaLeft.Node(id).Child; child != 0 {
			assert.Equalf(t, id-1, leftOut[child-1], "left channel should route %d -> %d", id, child)
		}
		if child := e.GammaRight.Node(id).Child; child != 0 {
			assert.Equalf(t, id-1, rightOut[child-1], "right channel should route %d -> %d", id, child)
		}
	}
}

func TestEmbed_SingleNodeGraph(t *testing.T) {
	g := gamma2.NewGraphSized(1)
	root, err := splittree.Build(g, 0, false, false, false, nil)
	require.NoError(t, err)

	e, err := embed.Embed(root)
	require.NoError(t, err)
	assert.Equal(t, 1, e.N)
	assert.Equal(t, 1, e.Left.N)
	assert.Equal(t, 1, e.Right.N)
}

func TestEmbed_RejectsOversizedLeaf(t *testing.T) {
	// A split tree whose leaf exceeds the four-pole base case is malformed
	// input for Embed, which only ever programs the root level's channels.
	leaf := &splittree.Node{Graph: gamma2.NewGraphSized(5)}
	root := &splittree.Node{Graph: gamma2.NewGraphSized(5), SubLeft: leaf}
	_, err := embed.Embed(root)
	assert.ErrorIs(t, err, embed.ErrEmbeddingImpossible)
}
