package pipeline

import (
	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/gamma2"
	"github.com/katalvlaran/uc/gate"
	"github.com/katalvlaran/uc/hybrid"
	"github.com/katalvlaran/uc/splittree"
	"github.com/katalvlaran/uc/ucemit"
	"github.com/katalvlaran/uc/ucvalidate"
)

// Result holds every intermediate artifact the pipeline produced, so
// callers (tests, cmd/uc) can inspect any stage without re-running it.
type Result struct {
	Normalized *gate.List
	Graph      *gamma2.Graph
	Oracle     *hybrid.Oracle
	SplitRoot  *splittree.Node
	Embedding  *embed.Embedding
	Artifact   *ucemit.Artifact
}

// Run executes the full compiler over l under cfg: normalize (C1), build
// the Γ₂ graph (C2), split it recursively (C3-C5), embed the split tree
// (C6-C8), emit the flattened circuit (C9), and validate it (C10).
//
// Complexity: O(n log n) in the number of gates.
func Run(l *gate.List, cfg Config) (*Result, error) {
	normalized := gate.Normalize(l)

	g, err := gamma2.Build(normalized)
	if err != nil {
		return nil, err
	}

	var oracle *hybrid.Oracle
	if cfg.Hybrid() {
		oracle = hybrid.NewOracle(uint32(g.N()), cfg.Zhao)
	}

	root, err := splittree.Build(g, 0, false, cfg.FourWay(), cfg.Hybrid(), oracle)
	if err != nil {
		return nil, err
	}
	splittree.FixParity(root)

	embedding, err := embed.Embed(root)
	if err != nil {
		return nil, err
	}
	if err := ucvalidate.Blocks(embedding); err != nil {
		return nil, err
	}

	art, err := ucemit.Build(g, embedding)
	if err != nil {
		return nil, err
	}
	if err := ucvalidate.Edges(art); err != nil {
		return nil, err
	}

	return &Result{
		Normalized: normalized,
		Graph:      g,
		Oracle:     oracle,
		SplitRoot:  root,
		Embedding:  embedding,
		Artifact:   art,
	}, nil
}
