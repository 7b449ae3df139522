package gate

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Parse reads the textual gate-list grammar:
//
//	<id> input
//	<id> [output] gate arity <a> table [ b0 b1 [b2 b3] ] inputs [ w1 [w2] ]
//	outputs w1 w2 ...
//
// "[" and "]" are literal space-separated tokens, not illustrative
// brackets — this mirrors the reference reader's tokenizer, which treats
// every line as a flat list of whitespace-separated fields.
//
// Complexity: O(total tokens)
func Parse(r io.Reader) (*List, error) {
	list := &List{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "outputs" {
			outs, err := parseOutputs(fields)
			if err != nil {
				return nil, fmt.Errorf("%w at line %d: %s", ErrMalformed, lineNo, line)
			}
			for _, o := range outs {
				// a gate already flagged "output" is listed once
				if !slices.Contains(list.Outputs, o) {
					list.Outputs = append(list.Outputs, o)
				}
			}
			continue
		}
		g, err := parseGateLine(fields)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %s: %v", ErrMalformed, lineNo, line, err)
		}
		if g.ID != len(list.Gates)+1 {
			return nil, fmt.Errorf("%w at line %d: out-of-order id %d", ErrMalformed, lineNo, g.ID)
		}
		for _, in := range g.Inputs {
			if in < 1 || in > len(list.Gates) {
				return nil, fmt.Errorf("%w at line %d: %w %d", ErrMalformed, lineNo, ErrUnknownInput, in)
			}
		}
		list.Gates = append(list.Gates, g)
		if g.IsOutput {
			list.Outputs = append(list.Outputs, g.ID)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func parseOutputs(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseGateLine(fields []string) (*Gate, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("too few fields")
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad id: %w", err)
	}
	if fields[1] == "input" {
		return &Gate{ID: id, Arity: 0}, nil
	}

	i := 1
	isOutput := false
	if fields[i] == "output" {
		isOutput = true
		i++
	}
	if i >= len(fields) || fields[i] != "gate" {
		return nil, fmt.Errorf("expected 'gate'")
	}
	i++
	if i >= len(fields) || fields[i] != "arity" {
		return nil, fmt.Errorf("expected 'arity'")
	}
	i++
	if i >= len(fields) {
		return nil, fmt.Errorf("missing arity value")
	}
	arity, err := strconv.Atoi(fields[i])
	if err != nil {
		return nil, fmt.Errorf("bad arity: %w", err)
	}
	if arity != 1 && arity != 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadArity, arity)
	}
	i++

	tbl, i, err := parseBracketedBools(fields, i, "table", 1<<arity)
	if err != nil {
		return nil, err
	}
	inputs, i, err := parseBracketedInts(fields, i, "inputs", arity)
	if err != nil {
		return nil, err
	}
	_ = i

	var table [4]bool
	if arity == 1 {
		table = [4]bool{tbl[0], tbl[0], tbl[1], tbl[1]}
	} else {
		table = [4]bool{tbl[0], tbl[1], tbl[2], tbl[3]}
	}

	return &Gate{
		ID:       id,
		Arity:    arity,
		Table:    table,
		Inputs:   inputs,
		IsOutput: isOutput,
	}, nil
}

func parseBracketedBools(fields []string, i int, keyword string, n int) ([]bool, int, error) {
	if i >= len(fields) || fields[i] != keyword {
		return nil, i, fmt.Errorf("expected %q", keyword)
	}
	i++
	if i >= len(fields) || fields[i] != "[" {
		return nil, i, fmt.Errorf("expected '['")
	}
	i++
	out := make([]bool, 0, n)
	for j := 0; j < n; j++ {
		if i >= len(fields) {
			return nil, i, fmt.Errorf("truncated %s list", keyword)
		}
		v, err := strconv.Atoi(fields[i])
		if err != nil || (v != 0 && v != 1) {
			return nil, i, fmt.Errorf("bad bit %q", fields[i])
		}
		out = append(out, v == 1)
		i++
	}
	if i >= len(fields) || fields[i] != "]" {
		return nil, i, fmt.Errorf("expected ']'")
	}
	i++
	return out, i, nil
}

func parseBracketedInts(fields []string, i int, keyword string, n int) ([]int, int, error) {
	if i >= len(fields) || fields[i] != keyword {
		return nil, i, fmt.Errorf("expected %q", keyword)
	}
	i++
	if i >= len(fields) || fields[i] != "[" {
		return nil, i, fmt.Errorf("expected '['")
	}
	i++
	out := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if i >= len(fields) {
			return nil, i, fmt.Errorf("truncated %s list", keyword)
		}
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, i, fmt.Errorf("bad id %q", fields[i])
		}
		out = append(out, v)
		i++
	}
	if i >= len(fields) || fields[i] != "]" {
		return nil, i, fmt.Errorf("expected ']'")
	}
	i++
	return out, i, nil
}

// Write emits a List back into the textual grammar Parse accepts.
// Complexity: O(total tokens)
func Write(w io.Writer, l *List) error {
	bw := bufio.NewWriter(w)
	for _, g := range l.Gates {
		if g.Arity == 0 {
			if _, err := fmt.Fprintf(bw, "%d input\n", g.ID); err != nil {
				return err
			}
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", g.ID)
		if g.IsOutput {
			sb.WriteString("output ")
		}
		fmt.Fprintf(&sb, "gate arity %d table [ ", g.Arity)
		n := 1 << g.Arity
		for i := 0; i < n; i++ {
			bit := g.Table[i]
			if g.Arity == 1 {
				bit = g.Table[2*i] // Parse stores an arity-1 table as (c0,c0,c1,c1)
			}
			if bit {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("] inputs [ ")
		for _, in := range g.Inputs {
			fmt.Fprintf(&sb, "%d ", in)
		}
		sb.WriteString("]\n")
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	if len(l.Outputs) > 0 {
		var sb strings.Builder
		sb.WriteString("outputs")
		for _, o := range l.Outputs {
			fmt.Fprintf(&sb, " %d", o)
		}
		sb.WriteString("\n")
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
