package apta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot(t *testing.T) {
	a, err := BuildPTA([]Symbol{0, 1}, []StringInstance{
		NewStringInstance(ACCEPTING, 0, 1),
		NewStringInstance(REJECTING, 1),
	})
	require.NoError(t, err)

	snap := a.Snapshot()
	assert.Equal(t, Snapshot{
		Alphabet: []Symbol{0, 1},
		Start:    0,
		States:   []Label{UNKNOWN, UNKNOWN, ACCEPTING, REJECTING},
		Transitions: []SnapshotTransition{
			{From: 0, Symbol: 0, To: 1},
			{From: 0, Symbol: 1, To: 3},
			{From: 1, Symbol: 1, To: 2},
		},
	}, snap)

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"ACCEPTING"`)

		var b DFA
		require.NoError(t, json.Unmarshal(data, &b))
		assert.Equal(t, snap, b.Snapshot())
		assert.Equal(t, ACCEPTING, b.Classify([]Symbol{0, 1}))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(a)
		require.NoError(t, err)
		assert.Contains(t, string(data), "REJECTING")

		var b DFA
		require.NoError(t, yaml.Unmarshal(data, &b))
		assert.Equal(t, snap, b.Snapshot())
	})
}

func TestFromSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want error
	}{
		{
			name: "duplicateTransition",
			snap: Snapshot{Alphabet: []Symbol{0}, States: []Label{UNKNOWN, UNKNOWN},
				Transitions: []SnapshotTransition{{0, 0, 1}, {0, 0, 0}}},
			want: ErrDuplicateTransition,
		},
		{
			name: "danglingDestination",
			snap: Snapshot{Alphabet: []Symbol{0}, States: []Label{UNKNOWN},
				Transitions: []SnapshotTransition{{0, 0, 4}}},
			want: ErrUnknownState,
		},
		{
			name: "badStart",
			snap: Snapshot{Alphabet: []Symbol{0}, Start: 2, States: []Label{UNKNOWN}},
			want: ErrUnknownState,
		},
		{
			name: "unknownSymbol",
			snap: Snapshot{Alphabet: []Symbol{0}, States: []Label{UNKNOWN},
				Transitions: []SnapshotTransition{{0, 3, 0}}},
			want: ErrUnknownSymbol,
		},
		{
			name: "invalidLabel",
			snap: Snapshot{Alphabet: []Symbol{0}, States: []Label{UNKNOWN, Label(9)}},
			want: ErrInvalidLabel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSnapshot(tt.snap)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("empty", func(t *testing.T) {
		a, err := FromSnapshot(Snapshot{Alphabet: []Symbol{0}, Start: -1})
		assert.Nil(t, err)
		assert.Equal(t, 0, a.NumStates())
	})

	t.Run("nonZeroStart", func(t *testing.T) {
		a, err := FromSnapshot(Snapshot{Alphabet: []Symbol{0}, Start: 1, States: []Label{UNKNOWN, ACCEPTING}})
		assert.Nil(t, err)
		assert.Equal(t, 1, a.Start())
		assert.Equal(t, ACCEPTING, a.Classify(nil))
	})
}

func TestParseLabel(t *testing.T) {
	label, err := ParseLabel("accepting")
	assert.Nil(t, err)
	assert.Equal(t, ACCEPTING, label)

	_, err = ParseLabel("maybe")
	assert.Error(t, err)

	var l Label
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &l))
	_, err = Label(7).MarshalText()
	assert.Error(t, err)
}
