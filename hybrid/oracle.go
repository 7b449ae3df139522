// Package hybrid implements the split-cost oracle (C5): a dynamic-programming
// table that, for each pole count up to N, decides whether a 2-way or a
// 4-way split produces the smaller edge-universal graph, using Valiant's
// and Zhao's published per-block edge-count constants.
//
// The recurrence is ported 1:1 from the reference implementation's
// Dynamic_Hybrid, including its n==5/6/7 special cases, which compare
// against the oracle's overall target size rather than the loop variable —
// that quirk is reproduced verbatim rather than "fixed", per the rule of
// replicating observed behaviour exactly.
package hybrid

// Per-block edge-count constants (Valiant's 2-way graph, Zhao's 4-way
// graph), named after the block kind and pole-count residue they cost.
const (
	head2s  = 3
	body211 = 5
	body212 = 5
	head4s  = 13

	tail1s = 1
	tail2s = 4
	tail3s = 9
	tail4s = 14

	body41s = 17
	body42s = 18
)

// Oracle answers NextK(size): the cheaper split arity (2 or 4) for a
// universal graph over that many poles, precomputed up to N.
type Oracle struct {
	valiantHybrid []uint64
	hybridChoice  []uint64
}

// NewOracle builds an Oracle for pole counts 0..n. zhao lowers Zhao's
// BODY43 and BODY44 4-way block costs from 19 to 18; BODY44 enters the
// 4-way option of every residue class, BODY43 only that of j%4==3.
//
// Complexity: O(n)
func NewOracle(n uint32, zhao bool) *Oracle {
	body43s, body44s := uint64(19), uint64(19)
	if zhao {
		body43s, body44s = 18, 18
	}

	valiantHybrid := make([]uint64, n+1)
	hybridChoice := make([]uint64, 0, n+1)

	if n >= 4 {
		valiantHybrid[4] = 6
	}
	if n >= 3 {
		valiantHybrid[3] = 3
	}
	if n >= 2 {
		valiantHybrid[2] = 2
	}
	if n >= 1 {
		valiantHybrid[1] = 1
	}
	valiantHybrid[0] = 0

	for i := 0; i < 5 && uint32(i) <= n; i++ {
		hybridChoice = append(hybridChoice, 2)
	}

	var option2way, option4way uint64
	for j := uint32(5); j <= n; j++ {
		switch {
		case n == 5:
			option4way = 13
			option2way = valiantHybrid[n/2-1] + valiantHybrid[n/2] +
				body212*(uint64(n/2)+1-3) + body211 + head2s + tail1s
		case n == 6:
			option4way = 17
			option2way = 2*valiantHybrid[n/2-1] +
				body212*(uint64(n/2)-3) + body212 + tail2s + head2s
		case n == 7:
			option4way = 23
			option2way = valiantHybrid[n/2-1] + valiantHybrid[n/2] +
				body212*(uint64(n/2)+1-3) + body211 + head2s + tail1s
		}
		switch j % 4 {
		case 0:
			option4way = 4*valiantHybrid[j/4-1] +
				body44s*(uint64(j/4)-3) + body44s + head4s + tail4s
			option2way = 2*valiantHybrid[j/2-1] +
				body212*(uint64(j/2)-3) + body212 + tail2s + head2s
		case 3:
			option4way = valiantHybrid[j/4-1] + 3*valiantHybrid[j/4] +
				body44s*(uint64(j/4)+1-3) + body43s + head4s + tail3s
			option2way = valiantHybrid[j/2-1] + valiantHybrid[j/2] +
				body212*(uint64(j/2)+1-3) + body211 + head2s + tail1s
		case 2:
			option4way = 2*valiantHybrid[j/4-1] + 2*valiantHybrid[j/4] +
				body44s*(uint64(j/4)+1-3) + body42s + head4s + tail2s
			option2way = 2*valiantHybrid[j/2-1] +
				body212*(uint64(j/2)-3) + body212 + tail2s + head2s
		case 1:
			option4way = 3*valiantHybrid[j/4-1] + valiantHybrid[j/4] +
				body44s*(uint64(j/4)+1-3) + body41s + head4s + tail1s
			option2way = valiantHybrid[j/2-1] + valiantHybrid[j/2] +
				body212*(uint64(j/2)+1-3) + body211 + head2s + tail1s
		}
		if option2way < option4way {
			valiantHybrid[j] = option2way
			hybridChoice = append(hybridChoice, 2)
		} else {
			valiantHybrid[j] = option4way
			hybridChoice = append(hybridChoice, 4)
		}
	}

	return &Oracle{valiantHybrid: valiantHybrid, hybridChoice: hybridChoice}
}

// NextK returns the cheaper split arity (2 or 4) for the given pole count.
func (o *Oracle) NextK(size uint32) uint64 {
	if size >= uint32(len(o.hybridChoice)) {
		return 2
	}
	return o.hybridChoice[size]
}

// Cost returns the precomputed edge-count estimate for the given pole count.
func (o *Oracle) Cost(size uint32) uint64 {
	if size >= uint32(len(o.valiantHybrid)) {
		return 0
	}
	return o.valiantHybrid[size]
}
