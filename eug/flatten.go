package eug

// Gate is one flattened 2-input/2-output switch: two input wire ids, two
// freshly allocated output wire ids, and the straight/swap control bit
// Program assigned the underlying Switch. Out[0] carries In[1] instead of
// In[0] (and Out[1] the other way round) exactly when Swap is true —
// matching Apply's own v0,v1 = v1,v0 swap.
type Gate struct {
	In   [2]int
	Out  [2]int
	Swap bool
}

// Flatten realizes net's programmed permutation as a concrete list of
// 2-in/2-out switch gates over the given input wire ids, allocating every
// switch's two output wire ids from *next (advanced by 2 per switch), and
// returns the N output wire ids in position order.
//
// This mirrors Apply's recursive front/recurse/back structure line for
// line, with every computed bool replaced by an allocated wire id — the
// emitted X-switch gates realize the exact same routing Apply simulates.
//
// Complexity: O(N log N)
func (net *Network) Flatten(in []int, next *int) ([]int, []Gate) {
	n := net.N
	if n <= 1 {
		out := make([]int, n)
		copy(out, in)
		return out, nil
	}

	var gates []Gate
	topIn := make([]int, net.Top.N)
	bottomIn := make([]int, net.Bottom.N)
	topCount, bottomCount := 0, 0
	for j := 0; j < n/2; j++ {
		i0, i1 := in[2*j], in[2*j+1]
		o0, o1 := *next, *next+1
		*next += 2
		gates = append(gates, Gate{In: [2]int{i0, i1}, Out: [2]int{o0, o1}, Swap: net.Front[j].Control})
		topIn[topCount] = o0
		topCount++
		bottomIn[bottomCount] = o1
		bottomCount++
	}
	if net.oddWire {
		topIn[topCount] = in[n-1]
	}

	topOut, topGates := net.Top.Flatten(topIn, next)
	gates = append(gates, topGates...)
	bottomOut, bottomGates := net.Bottom.Flatten(bottomIn, next)
	gates = append(gates, bottomGates...)

	out := make([]int, n)
	topOutCount, bottomOutCount := 0, 0
	for j := 0; j < n/2; j++ {
		t, b := topOut[topOutCount], bottomOut[bottomOutCount]
		topOutCount++
		bottomOutCount++
		o0, o1 := *next, *next+1
		*next += 2
		gates = append(gates, Gate{In: [2]int{t, b}, Out: [2]int{o0, o1}, Swap: net.Back[j].Control})
		out[2*j], out[2*j+1] = o0, o1
	}
	if net.oddWire {
		out[n-1] = topOut[topOutCount]
	}
	return out, gates
}
