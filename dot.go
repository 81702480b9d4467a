package apta

import (
	"fmt"
	"io"
	"strings"
)

// DOTOptions controls WriteDOT.
type DOTOptions struct {
	// TopDown lays the graph out top to bottom instead of left to right.
	TopDown bool
	// SymbolNames maps symbols to edge labels. Symbols without a name are printed as numbers.
	SymbolNames map[Symbol]string
}

// WriteDOT Writes the automaton in Graphviz DOT format. Accepting states are drawn with a double
// circle, rejecting states with a thick outline, and an invisible node points at the start state.
func (a *DFA) WriteDOT(w io.Writer, opts DOTOptions) error {
	var sb strings.Builder

	sb.WriteString("digraph g {\n")
	if !opts.TopDown {
		sb.WriteString("\trankdir=LR;\n")
	}
	sb.WriteString("\tgraph [ordering=\"out\"];\n")
	sb.WriteString("\tnull [style=invis];\n")

	for _, s := range a.states {
		attrs := ""
		switch s.Label {
		case ACCEPTING:
			attrs = " peripheries=2"
		case REJECTING:
			attrs = " style=\"setlinewidth(3)\""
		}
		fmt.Fprintf(&sb, "\tq%d [label=\"q%d\" shape=circle%s];\n", s.Index, s.Index, attrs)
	}

	if a.start != -1 {
		fmt.Fprintf(&sb, "\tnull -> q%d;\n", a.start)
	}

	for s := range a.states {
		for id, dest := range a.row(s) {
			if dest == -1 {
				continue
			}
			symbol := a.alphabet[id]
			name, ok := opts.SymbolNames[symbol]
			if !ok {
				name = fmt.Sprint(symbol)
			}
			fmt.Fprintf(&sb, "\tq%d -> q%d [label=%q];\n", s, dest, name)
		}
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
