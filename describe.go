package apta

import (
	"fmt"
	"io"
	"strings"
)

// Describe Writes a human readable summary of the automaton to w: number of states and
// transitions, alphabet size, start state and label counts. When verbose is set, every state
// and every transition is listed as well. The automaton is not modified.
func (a *DFA) Describe(w io.Writer, verbose bool) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "This DFA has %d states, %d transitions and %d symbols\n",
		len(a.states), a.numTransitions, len(a.alphabet))
	fmt.Fprintf(&sb, "Start state: %d\n", a.start)
	fmt.Fprintf(&sb, "Accepting: %d, Rejecting: %d, Unknown: %d\n",
		a.CountLabel(ACCEPTING), a.CountLabel(REJECTING), a.CountLabel(UNKNOWN))

	if verbose {
		sb.WriteString("Alphabet:\n")
		for id, symbol := range a.alphabet {
			fmt.Fprintf(&sb, "  %d - %d\n", id, symbol)
		}
		sb.WriteString("States:\n")
		for _, s := range a.states {
			fmt.Fprintf(&sb, "  %d %s\n", s.Index, s.Label)
		}
		sb.WriteString("Transitions:\n")
		for s := range a.states {
			for id, dest := range a.row(s) {
				if dest != -1 {
					fmt.Fprintf(&sb, "  %d --%d--> %d\n", s, a.alphabet[id], dest)
				}
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (a *DFA) String() string {
	var sb strings.Builder
	_ = a.Describe(&sb, false)
	return sb.String()
}
