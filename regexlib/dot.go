package regexlib

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT prints a Graphviz rendering of the automaton to w. Edge labels
// are the label of the target state.
func WriteDOT(w io.Writer, a *NFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for _, s := range a.states {
		shape := "circle"
		if s.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", s.ID, shape)
		for _, t := range s.Next {
			fmt.Fprintf(bw, "    n%d -> n%d [label=\"%s\"];\n", s.ID, t, a.states[t].Label)
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", a.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func (l Label) String() string {
	if l == Epsilon {
		return "ε"
	}
	return string(rune(l))
}
