package apta

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SnapshotTransition is one transition of a Snapshot.
type SnapshotTransition struct {
	From   int    `json:"from" yaml:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	To     int    `json:"to" yaml:"to"`
}

// Snapshot is the serializable form of a DFA. States are listed by index.
type Snapshot struct {
	Alphabet    []Symbol             `json:"alphabet" yaml:"alphabet"`
	Start       int                  `json:"start" yaml:"start"`
	States      []Label              `json:"states" yaml:"states"`
	Transitions []SnapshotTransition `json:"transitions" yaml:"transitions"`
}

// Snapshot Returns the serializable form of the automaton. Transitions are ordered by source
// state, then by alphabet order.
func (a *DFA) Snapshot() Snapshot {
	snap := Snapshot{
		Alphabet:    a.Alphabet(),
		Start:       a.start,
		States:      make([]Label, len(a.states)),
		Transitions: make([]SnapshotTransition, 0, a.numTransitions),
	}
	for i, s := range a.states {
		snap.States[i] = s.Label
	}
	for s := range a.states {
		for id, dest := range a.row(s) {
			if dest != -1 {
				snap.Transitions = append(snap.Transitions, SnapshotTransition{From: s, Symbol: a.alphabet[id], To: dest})
			}
		}
	}
	return snap
}

// FromSnapshot Rebuilds an automaton from a snapshot, checking every invariant on the way.
func FromSnapshot(snap Snapshot) (*DFA, error) {
	a, err := NewDFA(snap.Alphabet)
	if err != nil {
		return nil, err
	}
	for i, label := range snap.States {
		if err := a.AppendState(CreateState(label, i)); err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
	}
	if len(snap.States) > 0 || snap.Start != -1 {
		if err := a.SetStart(snap.Start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	for _, t := range snap.Transitions {
		if err := a.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *DFA) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Snapshot())
}

func (a *DFA) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	b, err := FromSnapshot(snap)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}

func (a *DFA) MarshalYAML() (interface{}, error) {
	return a.Snapshot(), nil
}

func (a *DFA) UnmarshalYAML(value *yaml.Node) error {
	var snap Snapshot
	if err := value.Decode(&snap); err != nil {
		return err
	}
	b, err := FromSnapshot(snap)
	if err != nil {
		return err
	}
	*a = *b
	return nil
}

func (l Label) MarshalText() ([]byte, error) {
	switch l {
	case UNKNOWN, ACCEPTING, REJECTING:
		return []byte(l.String()), nil
	}
	return nil, fmt.Errorf("invalid label %d", uint8(l))
}

func (l *Label) UnmarshalText(text []byte) error {
	label, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = label
	return nil
}

// ParseLabel Parses a label name, case insensitive.
func ParseLabel(s string) (Label, error) {
	switch strings.ToUpper(s) {
	case "UNKNOWN":
		return UNKNOWN, nil
	case "ACCEPTING":
		return ACCEPTING, nil
	case "REJECTING":
		return REJECTING, nil
	}
	return UNKNOWN, fmt.Errorf("invalid label %q", s)
}
