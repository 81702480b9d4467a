package apta

import (
	"cmp"
	"slices"
)

// StringInstance is a labeled string of symbols.
type StringInstance struct {
	Symbols []Symbol
	Label   Label
}

// NewStringInstance Create a string instance from symbols and label.
func NewStringInstance(label Label, symbols ...Symbol) StringInstance {
	return StringInstance{Symbols: symbols, Label: label}
}

func (s StringInstance) Length() int {
	return len(s.Symbols)
}

// ConsistentWith Returns true if the automaton does not contradict the instance. UNKNOWN instances
// are always consistent. A missing path is consistent only with a rejecting instance.
func (s StringInstance) ConsistentWith(a *DFA) bool {
	if s.Label == UNKNOWN {
		return true
	}
	state, ok := a.Walk(s.Symbols)
	if !ok {
		return s.Label != ACCEPTING
	}
	switch a.states[state].Label {
	case ACCEPTING:
		return s.Label == ACCEPTING
	case REJECTING:
		return s.Label == REJECTING
	default:
		return true
	}
}

// Dataset is an ordered sample of string instances.
type Dataset []StringInstance

// SortByLength Returns a copy sorted shortest first. Strings of equal length keep their order.
func (d Dataset) SortByLength() Dataset {
	sorted := slices.Clone(d)
	slices.SortStableFunc(sorted, func(a, b StringInstance) int {
		return cmp.Compare(len(a.Symbols), len(b.Symbols))
	})
	return sorted
}

// SortLexicographic Returns a copy sorted symbol by symbol; a prefix sorts before its extensions.
func (d Dataset) SortLexicographic() Dataset {
	sorted := slices.Clone(d)
	slices.SortStableFunc(sorted, func(a, b StringInstance) int {
		return slices.Compare(a.Symbols, b.Symbols)
	})
	return sorted
}

// Accepting Returns the accepting instances.
func (d Dataset) Accepting() Dataset {
	return d.filter(ACCEPTING)
}

// Rejecting Returns the rejecting instances.
func (d Dataset) Rejecting() Dataset {
	return d.filter(REJECTING)
}

// Unknown Returns the unlabeled instances.
func (d Dataset) Unknown() Dataset {
	return d.filter(UNKNOWN)
}

func (d Dataset) filter(label Label) Dataset {
	result := make(Dataset, 0)
	for _, s := range d {
		if s.Label == label {
			result = append(result, s)
		}
	}
	return result
}

// MaxLength Returns the length of the longest string, 0 for an empty dataset.
func (d Dataset) MaxLength() int {
	longest := 0
	for _, s := range d {
		longest = max(longest, len(s.Symbols))
	}
	return longest
}

// Alphabet Returns the distinct symbols used by the dataset in ascending order.
func (d Dataset) Alphabet() []Symbol {
	set := make(map[Symbol]struct{})
	for _, s := range d {
		for _, symbol := range s.Symbols {
			set[symbol] = struct{}{}
		}
	}
	symbols := make([]Symbol, 0, len(set))
	for symbol := range set {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// ConsistentWith Returns true if every instance is consistent with the automaton.
func (d Dataset) ConsistentWith(a *DFA) bool {
	for _, s := range d {
		if !s.ConsistentWith(a) {
			return false
		}
	}
	return true
}

// Accuracy Returns the fraction of labeled instances the automaton classifies correctly. A string
// counts as accepted only if it ends in an accepting state; anything else counts as rejected.
// Unlabeled instances are ignored. Returns 0 when there are no labeled instances.
func (d Dataset) Accuracy(a *DFA) float64 {
	labeled, correct := 0, 0
	for _, s := range d {
		if s.Label == UNKNOWN {
			continue
		}
		labeled++
		predicted := REJECTING
		if a.Classify(s.Symbols) == ACCEPTING {
			predicted = ACCEPTING
		}
		if predicted == s.Label {
			correct++
		}
	}
	if labeled == 0 {
		return 0
	}
	return float64(correct) / float64(labeled)
}
