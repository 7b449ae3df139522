package ucvalidate

import (
	"fmt"

	"github.com/katalvlaran/uc/ucemit"
)

// Edges walks backward from every output wire of art until a C (circuit
// input) line is reached, following both inputs of a gate U switch and,
// through terminal Y switches and the embedded channel networks' X
// switches, only the input the switch's control bit selects. Fails if an
// input reference of a line on the walk is dangling, whether selected or
// not, if a path grows deeper than len(art.Lines) lines
// (cycle), or if an output never resolves to an input.
//
// Grounded on spec.md's end-to-end edge-embedding check: walk from the
// destination backwards through switch controls until a pole (here, a
// circuit input) is reached. Because Build routes every gate's operands
// through the embedded channels rather than the source graph's parent
// pointers, this walk now actually exercises switch-control paths instead
// of the original circuit's wiring.
//
// Complexity: O(len(Lines)) per path walked; wires are not memoized, so a
// wire shared by several paths is walked once per path.
func Edges(art *ucemit.Artifact) error {
	byWire := make(map[int]ucemit.Line, len(art.Lines))
	for _, l := range art.Lines {
		byWire[l.Wire] = l
		if l.Kind == "X" {
			byWire[l.Wire2] = l
		}
	}
	limit := len(art.Lines) + 1

	for _, out := range art.Outputs {
		if err := walkBack(byWire, out, limit); err != nil {
			return err
		}
	}
	return nil
}

func walkBack(byWire map[int]ucemit.Line, wire, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: wire %d exceeded bounded walk depth", ErrEdgeEmbeddingFailed, wire)
	}
	line, ok := byWire[wire]
	if !ok {
		return fmt.Errorf("%w: wire %d has no defining line", ErrEdgeEmbeddingFailed, wire)
	}
	if line.Kind == "C" {
		return nil
	}
	skip := -1 // an X or Y output reads only the input its control selects
	switch {
	case line.Kind == "X" && (wire == line.Wire) == line.Swap, line.Kind == "Y" && line.Swap:
		skip = 0
	case line.Kind == "X" || line.Kind == "Y":
		skip = 1
	}
	for k, in := range line.Inputs {
		if _, ok := byWire[in]; !ok {
			return fmt.Errorf("%w: wire %d has no defining line", ErrEdgeEmbeddingFailed, in)
		}
		if k == skip {
			continue
		}
		if err := walkBack(byWire, in, depth-1); err != nil {
			return err
		}
	}
	return nil
}
