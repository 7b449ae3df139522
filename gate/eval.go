package gate

import "fmt"

// Eval evaluates a (typically normalized) List against an input vector,
// one bit per arity-0 gate in declaration order, and returns the values of
// the declared output wires in Outputs order.
//
// Grounded on the reference evaluator's calculate/eval_SHDL: walk gates in
// declaration order (already topological), compute each gate's value from
// its already-computed inputs, and read off the requested outputs at the
// end.
//
// Complexity: O(len(Gates))
func Eval(l *List, inputs []bool) ([]bool, error) {
	values := make([]bool, len(l.Gates)+1) // 1-based; values[0] unused
	inIdx := 0
	for _, g := range l.Gates {
		switch g.Arity {
		case 0:
			if inIdx >= len(inputs) {
				return nil, fmt.Errorf("gate: too few inputs, need more than %d", len(inputs))
			}
			values[g.ID] = inputs[inIdx]
			inIdx++
		case 1:
			a := values[g.Inputs[0]]
			values[g.ID] = tableLookup1(g.Table, a)
		case 2:
			a := values[g.Inputs[0]]
			b := values[g.Inputs[1]]
			values[g.ID] = tableLookup2(g.Table, a, b)
		default:
			return nil, fmt.Errorf("%w: %d", ErrBadArity, g.Arity)
		}
	}
	out := make([]bool, len(l.Outputs))
	for i, id := range l.Outputs {
		out[i] = values[id]
	}
	return out, nil
}

func tableLookup1(t [4]bool, a bool) bool {
	if a {
		return t[2]
	}
	return t[0]
}

func tableLookup2(t [4]bool, a, b bool) bool {
	idx := 0
	if a {
		idx |= 2
	}
	if b {
		idx |= 1
	}
	return t[idx]
}
