package apta

import "fmt"

// Label is the acceptance label of a state or of a string instance.
type Label uint8

const (
	UNKNOWN   = Label(iota) // Acceptance not determined
	ACCEPTING               // Accepting state
	REJECTING               // Rejecting state
)

func (l Label) String() string {
	switch l {
	case UNKNOWN:
		return "UNKNOWN"
	case ACCEPTING:
		return "ACCEPTING"
	case REJECTING:
		return "REJECTING"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// IsKnown Returns true for ACCEPTING and REJECTING.
func (l Label) IsKnown() bool {
	return l == ACCEPTING || l == REJECTING
}

func (l Label) valid() bool {
	return l <= REJECTING
}

// Symbol is an element of an automaton's alphabet.
type Symbol = int

// State is a state of a DFA. Its identity is Index, the position in the DFA's state sequence.
type State struct {
	Label Label
	Index int
}

// CreateState Create a new state value. It is not part of any automaton until it is passed to
// DFA.AppendState, which requires index to equal the automaton's current number of states.
func CreateState(label Label, index int) State {
	return State{Label: label, Index: index}
}

func (s State) IsAccepting() bool {
	return s.Label == ACCEPTING
}

func (s State) IsRejecting() bool {
	return s.Label == REJECTING
}

func (s State) IsUnknown() bool {
	return s.Label == UNKNOWN
}
