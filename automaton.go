// Package apta builds augmented prefix tree acceptors (APTAs): tree shaped deterministic automata
// whose states are labeled accepting, rejecting or unknown according to a sample of labeled strings.
package apta

import (
	"fmt"
	"slices"
)

// DFA Represents a deterministic finite automaton whose states carry a tri-state Label. States are
// integers assigned in creation order and are never renumbered. Transitions live in the automaton,
// not in the states: each state owns one row of the packed transition table, indexed by the
// position of the symbol in the alphabet. The alphabet is fixed when the DFA is created.
//
// A DFA is not safe for concurrent use while it is being built. Once building is done, read-only
// methods may be called from multiple goroutines.
type DFA struct {
	states []State

	alphabet []Symbol

	// Position of each symbol in alphabet; this is the column within a transition row.
	symbolIDs map[Symbol]int

	start int

	// Holds len(alphabet) destinations per state, -1 where no transition is defined.
	transitions []int

	numTransitions int
}

// NewDFA Create an empty automaton over the given alphabet. The start state is unset until the
// first state is appended.
func NewDFA(alphabet []Symbol) (*DFA, error) {
	a := &DFA{
		alphabet:  slices.Clone(alphabet),
		symbolIDs: make(map[Symbol]int, len(alphabet)),
		start:     -1,
	}
	for i, symbol := range alphabet {
		if _, ok := a.symbolIDs[symbol]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSymbol, symbol)
		}
		a.symbolIDs[symbol] = i
	}
	return a, nil
}

// AppendState Append a state created with CreateState to the state sequence. The state's index
// must equal the current number of states. The first state appended becomes the start state
// unless one was already set.
//
// This is also the escape hatch for callers that extend a built automaton, e.g. with a sink.
func (a *DFA) AppendState(s State) error {
	if s.Index != len(a.states) {
		return fmt.Errorf("%w: appended state has index %d, expected %d", ErrUnknownState, s.Index, len(a.states))
	}
	if !s.Label.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLabel, uint8(s.Label))
	}
	a.push(s)
	return nil
}

// AddState Create a state with the given label and append it. The label is not checked; use
// AppendState for labels that come from outside the program.
func (a *DFA) AddState(label Label) State {
	s := CreateState(label, len(a.states))
	a.push(s)
	return s
}

func (a *DFA) push(s State) {
	a.states = append(a.states, s)
	a.transitions = grow(a.transitions, len(a.states)*len(a.alphabet), -1)
	if a.start == -1 {
		a.start = s.Index
	}
}

// SetStart Set the start state.
func (a *DFA) SetStart(index int) error {
	if err := a.checkState(index); err != nil {
		return err
	}
	a.start = index
	return nil
}

// Start Returns the start state index, or -1 if the automaton has no states.
func (a *DFA) Start() int {
	return a.start
}

// SetLabel Set the label of an existing state.
func (a *DFA) SetLabel(index int, label Label) error {
	if err := a.checkState(index); err != nil {
		return err
	}
	if !label.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLabel, uint8(label))
	}
	a.states[index].Label = label
	return nil
}

// State Returns the state with the given index.
func (a *DFA) State(index int) (State, error) {
	if err := a.checkState(index); err != nil {
		return State{}, err
	}
	return a.states[index], nil
}

// States Returns a copy of the state sequence in index order.
func (a *DFA) States() []State {
	return slices.Clone(a.states)
}

// Alphabet Returns a copy of the alphabet in column order.
func (a *DFA) Alphabet() []Symbol {
	return slices.Clone(a.alphabet)
}

// NumStates How many states this automaton has.
func (a *DFA) NumStates() int {
	return len(a.states)
}

// NumTransitions How many transitions this automaton has.
func (a *DFA) NumTransitions() int {
	return a.numTransitions
}

// AddTransition Add a transition from source to dest on symbol. Fails if either state does not
// exist, if the symbol is not in the alphabet, or if source already has a transition on symbol.
// Existing transitions are never overwritten.
func (a *DFA) AddTransition(source int, symbol Symbol, dest int) error {
	if err := a.checkState(source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := a.checkState(dest); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	id, ok := a.symbolIDs[symbol]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}

	i := source*len(a.alphabet) + id
	if existing := a.transitions[i]; existing != -1 {
		return fmt.Errorf("%w: state %d on symbol %d already goes to state %d",
			ErrDuplicateTransition, source, symbol, existing)
	}
	a.transitions[i] = dest
	a.numTransitions++
	return nil
}

// Transition Returns the destination of source on symbol. The second result is false when no
// transition is defined, including when source or symbol are unknown.
func (a *DFA) Transition(source int, symbol Symbol) (int, bool) {
	if source < 0 || source >= len(a.states) {
		return -1, false
	}
	id, ok := a.symbolIDs[symbol]
	if !ok {
		return -1, false
	}
	dest := a.transitions[source*len(a.alphabet)+id]
	return dest, dest != -1
}

// Walk Follows symbols from the start state. Returns the reached state, or false if some
// transition along the way is undefined.
func (a *DFA) Walk(symbols []Symbol) (int, bool) {
	if a.start == -1 {
		return -1, false
	}
	state := a.start
	for _, symbol := range symbols {
		next, ok := a.Transition(state, symbol)
		if !ok {
			return -1, false
		}
		state = next
	}
	return state, true
}

// Classify Returns the label of the state reached by symbols, or UNKNOWN if there is none.
func (a *DFA) Classify(symbols []Symbol) Label {
	state, ok := a.Walk(symbols)
	if !ok {
		return UNKNOWN
	}
	return a.states[state].Label
}

// row returns the transitions leaving state, one entry per alphabet symbol.
func (a *DFA) row(state int) []int {
	k := len(a.alphabet)
	return a.transitions[state*k : (state+1)*k]
}

func (a *DFA) checkState(index int) error {
	if index < 0 || index >= len(a.states) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrUnknownState, index, len(a.states))
	}
	return nil
}
