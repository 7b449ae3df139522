package ucemit

import (
	"bufio"
	"fmt"
	"io"
)

// WriteCircuit writes the circuit topology file (§6): a single C line
// listing every input wire, one X line per channel-network switch, one U
// line per gate pole, one Y line per declared output's terminal
// duplicate-select switch, and a single O line listing the output wires in
// declaration order.
func WriteCircuit(w io.Writer, art *Artifact) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("C")
	for _, l := range art.Lines {
		if l.Kind == "C" {
			fmt.Fprintf(bw, " %d", l.Wire)
		}
	}
	bw.WriteString("\n")

	for _, l := range art.Lines {
		switch l.Kind {
		case "X":
			fmt.Fprintf(bw, "X %d %d %d %d\n", l.Inputs[0], l.Inputs[1], l.Wire, l.Wire2)
		case "U":
			fmt.Fprintf(bw, "U %d %d %d\n", l.Inputs[0], l.Inputs[1], l.Wire)
		case "Y":
			fmt.Fprintf(bw, "Y %d %d %d\n", l.Inputs[0], l.Inputs[1], l.Wire)
		}
	}

	bw.WriteString("O")
	for _, o := range art.Outputs {
		fmt.Fprintf(bw, " %d", o)
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// WriteProgramming writes the programming file (§6): one integer per
// switch line, in the same order WriteCircuit emitted them — a single 0/1
// control bit for X and Y lines, and a U line's table encoded as
// f0+2f1+4f2+8f3.
func WriteProgramming(w io.Writer, art *Artifact) error {
	bw := bufio.NewWriter(w)
	for _, l := range art.Lines {
		switch l.Kind {
		case "X", "Y":
			v := 0
			if l.Swap {
				v = 1
			}
			fmt.Fprintf(bw, "%d\n", v)
		case "U":
			code := 0
			for bit, v := range l.Table {
				if v {
					code |= 1 << uint(bit)
				}
			}
			fmt.Fprintf(bw, "%d\n", code)
		}
	}
	return bw.Flush()
}
