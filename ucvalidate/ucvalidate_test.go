package ucvalidate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/gamma2"
	"github.com/katalvlaran/uc/gate"
	"github.com/katalvlaran/uc/splittree"
	"github.com/katalvlaran/uc/ucemit"
	"github.com/katalvlaran/uc/ucvalidate"
)

func binaryTreeGraph(t *testing.T) *gamma2.Graph {
	t.Helper()
	lines := []string{
		"1 input", "2 input", "3 input", "4 input",
		"5 gate arity 2 table [ 0 0 0 1 ] inputs [ 1 2 ]",
		"6 gate arity 2 table [ 0 1 1 1 ] inputs [ 3 4 ]",
		"7 output gate arity 2 table [ 0 1 1 0 ] inputs [ 5 6 ]",
		"8 input",
		"outputs 7 8",
	}
	l, err := gate.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	g, err := gamma2.Build(l)
	require.NoError(t, err)
	return g
}

func buildEmbedding(t *testing.T, g *gamma2.Graph) *embed.Embedding {
	t.Helper()
	root, err := splittree.Build(g, 0, false, false, false, nil)
	require.NoError(t, err)
	splittree.FixParity(root)
	e, err := embed.Embed(root)
	require.NoError(t, err)
	return e
}

func TestBlocks_AcceptsWellFormedEmbedding(t *testing.T) {
	g := binaryTreeGraph(t)
	e := buildEmbedding(t, g)

	assert.NoError(t, ucvalidate.Blocks(e))
}

func TestEdges_AcceptsWellFormedArtifact(t *testing.T) {
	g := binaryTreeGraph(t)
	e := buildEmbedding(t, g)
	art, err := ucemit.Build(g, e)
	require.NoError(t, err)

	assert.NoError(t, ucvalidate.Edges(art))
}

// TestEdges_RejectsDanglingReference hand-builds an artifact with an output
// line pointing at a wire no line defines, simulating a malformed emitter
// without needing a real broken embedding (which Embed/Build cannot produce
// for a well-formed split tree).
func TestEdges_RejectsDanglingReference(t *testing.T) {
	art := &ucemit.Artifact{
		Lines: []ucemit.Line{
			{Kind: "C", Wire: 0},
			{Kind: "Y", Wire: 2, Inputs: []int{0, 99}},
		},
		Outputs: []int{2},
	}

	err := ucvalidate.Edges(art)
	assert.ErrorIs(t, err, ucvalidate.ErrEdgeEmbeddingFailed)
}
