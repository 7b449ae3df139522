package main

import (
	"math/rand"

	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/gamma2"
	"github.com/katalvlaran/uc/hybrid"
	"github.com/katalvlaran/uc/pipeline"
	"github.com/katalvlaran/uc/splittree"
	"github.com/katalvlaran/uc/ucemit"
	"github.com/katalvlaran/uc/ucvalidate"
)

// runRandom builds a random n-node Γ₂ supergraph for smoke testing and
// drives it through the same split/embed/emit/validate stages Run uses,
// skipping the gate-list/normalisation front end since there is no gate
// list to parse.
//
// Grounded on original_source/src/Gamma/gamma/gamma2.cpp's random_init:
// every node gets the XOR truth table (0,1,1,0) and, twice per node, an
// edge is attempted to a uniformly chosen later node.
func runRandom(n int, cfg pipeline.Config) error {
	g := randomGamma2(n, cfg.RandomSeed)

	var oracle *hybrid.Oracle
	if cfg.Hybrid() {
		oracle = hybrid.NewOracle(uint32(g.N()), cfg.Zhao)
	}

	root, err := splittree.Build(g, 0, false, cfg.FourWay(), cfg.Hybrid(), oracle)
	if err != nil {
		return err
	}
	splittree.FixParity(root)

	embedding, err := embed.Embed(root)
	if err != nil {
		return err
	}
	if err := ucvalidate.Blocks(embedding); err != nil {
		return err
	}

	art, err := ucemit.Build(g, embedding)
	if err != nil {
		return err
	}
	if err := ucvalidate.Edges(art); err != nil {
		return err
	}

	return writeArtifact("random", art)
}

func randomGamma2(n int, seed int64) *gamma2.Graph {
	g := gamma2.NewGraphSized(n)
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i <= n; i++ {
		g.Node(i).Table = [4]bool{false, true, true, false}
		for attempt := 0; attempt < 2; attempt++ {
			j := rng.Intn(n-i+1) + i
			if j != i {
				_ = g.AddEdge(i, j) // skip: slots already full is a valid outcome here
			}
		}
	}
	return g
}
