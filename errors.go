package apta

import "errors"

var (
	// ErrUnknownState is returned when a state index is outside the automaton's state sequence.
	ErrUnknownState = errors.New("unknown state")

	// ErrDuplicateTransition is returned when a (source, symbol) pair already has a destination.
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrConflictingLabel is returned by a strict build when one prefix is asserted
	// both accepting and rejecting.
	ErrConflictingLabel = errors.New("conflicting label")

	// ErrUnknownSymbol is returned when a symbol is not part of the automaton's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrDuplicateSymbol is returned by NewDFA when the alphabet lists a symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrInvalidLabel is returned when a label is none of UNKNOWN, ACCEPTING or REJECTING.
	ErrInvalidLabel = errors.New("invalid label")
)
