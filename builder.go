package apta

import (
	"fmt"
	"log/slog"
)

// SortOrder is the order in which BuildPTA processes its input.
type SortOrder int

const (
	SORT_NONE          = SortOrder(iota) // Keep input order
	SORT_LENGTH                          // Shortest strings first, ties keep input order
	SORT_LEXICOGRAPHIC                   // Symbol by symbol, prefixes first
)

type buildOption struct {
	strict       bool
	order        SortOrder
	positiveOnly bool
	logger       *slog.Logger
}

type BuildOption func(*buildOption)

// WithStrict Fail with ErrConflictingLabel when a prefix is asserted both accepting and
// rejecting. Without it the last string wins.
func WithStrict() BuildOption {
	return func(o *buildOption) {
		o.strict = true
	}
}

// WithSort Process the strings in the given order. The caller's slice is not modified.
func WithSort(order SortOrder) BuildOption {
	return func(o *buildOption) {
		o.order = order
	}
}

// WithSortByLength Process the strings shortest first. The caller's slice is not modified.
func WithSortByLength() BuildOption {
	return func(o *buildOption) {
		o.order = SORT_LENGTH
	}
}

// WithSortLexicographic Process the strings in lexicographic symbol order. The caller's slice
// is not modified.
func WithSortLexicographic() BuildOption {
	return func(o *buildOption) {
		o.order = SORT_LEXICOGRAPHIC
	}
}

// WithPositiveOnly Skip every string that is not accepting, producing a plain PTA instead of
// an APTA.
func WithPositiveOnly() BuildOption {
	return func(o *buildOption) {
		o.positiveOnly = true
	}
}

func WithLogger(logger *slog.Logger) BuildOption {
	return func(o *buildOption) {
		o.logger = logger
	}
}

// BuildPTA Builds a prefix tree acceptor from labeled strings over a fixed alphabet.
//
// The result has an UNKNOWN start state with index 0. Each string is walked from the start
// state, reusing existing transitions and creating UNKNOWN states where none exist, so every
// distinct prefix of the input ends in exactly one state. The state reached by the whole string
// then takes the string's label: UNKNOWN strings leave labels untouched, and a state already
// labeled with the opposite label is overwritten unless WithStrict is given.
//
// Symbols outside the alphabet fail with ErrUnknownSymbol when they are reached; the input is
// not validated up front.
func BuildPTA(alphabet []Symbol, instances []StringInstance, options ...BuildOption) (*DFA, error) {
	opts := &buildOption{
		order: SORT_NONE,
	}
	for _, fn := range options {
		fn(opts)
	}
	if opts.logger == nil {
		opts.logger = slog.New(slog.DiscardHandler)
	}

	a, err := NewDFA(alphabet)
	if err != nil {
		return nil, err
	}
	a.AddState(UNKNOWN)

	switch opts.order {
	case SORT_LENGTH:
		instances = Dataset(instances).SortByLength()
	case SORT_LEXICOGRAPHIC:
		instances = Dataset(instances).SortLexicographic()
	}

	skipped := 0
	for _, instance := range instances {
		if opts.positiveOnly && instance.Label != ACCEPTING {
			skipped++
			continue
		}

		state, err := a.extend(instance.Symbols)
		if err != nil {
			return nil, fmt.Errorf("string %v: %w", instance.Symbols, err)
		}
		if err := a.applyLabel(state, instance.Label, opts.strict); err != nil {
			return nil, fmt.Errorf("string %v: %w", instance.Symbols, err)
		}
	}

	opts.logger.Debug("built prefix tree",
		"strings", len(instances),
		"skipped", skipped,
		"states", a.NumStates(),
		"transitions", a.NumTransitions())

	return a, nil
}

// BuildPTA Builds a prefix tree acceptor from the dataset. See BuildPTA.
func (d Dataset) BuildPTA(alphabet []Symbol, options ...BuildOption) (*DFA, error) {
	return BuildPTA(alphabet, d, options...)
}

// extend walks symbols from the start state, adding a new UNKNOWN state and a transition to it
// wherever the path stops. Returns the state reached by the full sequence.
func (a *DFA) extend(symbols []Symbol) (int, error) {
	state := a.start
	for _, symbol := range symbols {
		if next, ok := a.Transition(state, symbol); ok {
			state = next
			continue
		}
		// Check before growing so a bad symbol leaves no dangling state behind.
		if _, ok := a.symbolIDs[symbol]; !ok {
			return -1, fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
		}

		s := CreateState(UNKNOWN, len(a.states))
		if err := a.AppendState(s); err != nil {
			return -1, err
		}
		if err := a.AddTransition(state, symbol, s.Index); err != nil {
			return -1, err
		}
		state = s.Index
	}
	return state, nil
}

func (a *DFA) applyLabel(state int, label Label, strict bool) error {
	if !label.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLabel, uint8(label))
	}
	current := a.states[state].Label
	switch {
	case label == UNKNOWN, current == label:
		return nil
	case current == UNKNOWN:
	case strict:
		return fmt.Errorf("%w: state %d is %s, string is %s", ErrConflictingLabel, state, current, label)
	}
	a.states[state].Label = label
	return nil
}
