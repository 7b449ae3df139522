package ucvalidate

import (
	"fmt"

	"github.com/katalvlaran/uc/embed"
	"github.com/katalvlaran/uc/eug"
	"github.com/katalvlaran/uc/gamma1"
)

// Blocks confirms e's two programmed channel networks actually realize
// every real edge of their respective Γ₁ colouring: applying each network
// to the identity vector must route every recorded parent's position to
// its child's position. Positions the colouring left edge-less are not
// checked — completePermutation was free to route them anywhere.
//
// Complexity: O(N log N), the cost of Apply on each channel.
func Blocks(e *embed.Embedding) error {
	if err := checkChannel(e.Left, e.GammaLeft); err != nil {
		return err
	}
	return checkChannel(e.Right, e.GammaRight)
}

func checkChannel(net *eug.Network, g *gamma1.Graph) error {
	n := net.N
	in := make([]int, n)
	for i := range in {
		in[i] = i
	}
	out := net.Apply(in)
	for id := 1; id <= n; id++ {
		child := g.Node(id).Child
		if child == 0 {
			continue
		}
		if out[child-1] != id-1 {
			return fmt.Errorf("%w: edge %d -> %d not realized (child receives %d)", ErrBlockValidationFailed, id, child, out[child-1]+1)
		}
	}
	return nil
}
