package ucemit

import "fmt"

// Eval evaluates art on inputs (one value per C line, in wire order) and
// returns the outputs in the order art.Outputs lists them.
//
// Every wire is resolved on demand and memoized, rather than assuming
// art.Lines is already in single-pass evaluation order: Build emits the
// two channel networks' switches before the gate poles, yet those switches
// also read the gate poles' own wires, so no left-to-right pass fits. An X
// or Y output resolves only the input its control bit selects.
//
// Grounded on read_SHDL.cpp's eval_UC for the per-line value semantics.
//
// Complexity: O(len(Lines))
func Eval(art *Artifact, inputs []bool) ([]bool, error) {
	var wantInputs int
	for _, l := range art.Lines {
		if l.Kind == "C" {
			wantInputs++
		}
	}
	if len(inputs) != wantInputs {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWireCountMismatch, len(inputs), wantInputs)
	}

	byWire := make(map[int]Line, len(art.Lines))
	values := make(map[int]bool, len(art.Lines))
	next := 0
	for _, l := range art.Lines {
		byWire[l.Wire] = l
		if l.Kind == "X" {
			byWire[l.Wire2] = l
		}
		if l.Kind == "C" {
			values[l.Wire] = inputs[next]
			next++
		}
	}

	limit := len(art.Lines) + 1
	out := make([]bool, len(art.Outputs))
	for i, w := range art.Outputs {
		v, err := resolve(byWire, values, w, limit)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func resolve(byWire map[int]Line, values map[int]bool, wire, depth int) (bool, error) {
	if v, ok := values[wire]; ok {
		return v, nil
	}
	if depth < 0 {
		return false, fmt.Errorf("%w: wire %d exceeded evaluation depth", ErrUnknownWire, wire)
	}
	line, ok := byWire[wire]
	if !ok {
		return false, fmt.Errorf("%w: wire %d has no defining line", ErrUnknownWire, wire)
	}

	// An X or Y output reads only the input its control bit selects.
	var a, b bool
	var err error
	useA := line.Kind == "U" || (line.Kind == "X" && (wire == line.Wire) != line.Swap) || (line.Kind == "Y" && !line.Swap)
	if useA {
		a, err = resolve(byWire, values, line.Inputs[0], depth-1)
	}
	if err == nil && (line.Kind == "U" || !useA) {
		b, err = resolve(byWire, values, line.Inputs[1], depth-1)
	}
	if err != nil {
		return false, err
	}

	switch line.Kind {
	case "X":
		v0, v1 := a, b
		if line.Swap {
			v0, v1 = b, a
		}
		if wire == line.Wire2 {
			v0 = v1
		}
		values[wire] = v0
	case "U":
		idx := 0
		if a {
			idx |= 2
		}
		if b {
			idx |= 1
		}
		values[line.Wire] = line.Table[idx]
	case "Y":
		v := a
		if line.Swap {
			v = b
		}
		values[line.Wire] = v
	default:
		return false, fmt.Errorf("%w: wire %d has no defining line", ErrUnknownWire, wire)
	}
	return values[wire], nil
}
