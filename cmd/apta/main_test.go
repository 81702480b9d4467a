package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/geange/apta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const trainFile = `4 2
1 2 0 1
0 2 0 0
1 1 1
0 1 1
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildCommand(t *testing.T) {
	train := writeTemp(t, "train.a", trainFile)

	t.Run("describe", func(t *testing.T) {
		out, logs, err := run(t, "build", train)
		require.NoError(t, err)
		assert.Contains(t, out, "This DFA has 5 states, 4 transitions")
		assert.Contains(t, logs, "built APTA")
		assert.Contains(t, logs, "depth=2")
	})

	t.Run("lastWriteWins", func(t *testing.T) {
		out, _, err := run(t, "build", train, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "4 REJECTING")
	})

	t.Run("strict", func(t *testing.T) {
		_, _, err := run(t, "build", train, "--strict")
		assert.ErrorIs(t, err, apta.ErrConflictingLabel)
	})

	t.Run("appendSink", func(t *testing.T) {
		out, _, err := run(t, "build", train, "--append-sink", "--log-level", "warn")
		require.NoError(t, err)
		assert.Contains(t, out, "This DFA has 6 states, 4 transitions")
	})

	t.Run("positiveOnly", func(t *testing.T) {
		out, _, err := run(t, "build", train, "--positive-only")
		require.NoError(t, err)
		assert.Contains(t, out, "This DFA has 4 states, 3 transitions")
	})

	t.Run("badSort", func(t *testing.T) {
		_, _, err := run(t, "build", train, "--sort", "random")
		assert.Error(t, err)
	})

	t.Run("unknownSymbol", func(t *testing.T) {
		bad := writeTemp(t, "bad.a", "1 2\n1 1 5\n")
		_, _, err := run(t, "build", bad)
		assert.ErrorIs(t, err, apta.ErrUnknownSymbol)
	})

	t.Run("missingFile", func(t *testing.T) {
		_, _, err := run(t, "build", filepath.Join(t.TempDir(), "nope.a"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigFile(t *testing.T) {
	train := writeTemp(t, "train.a", trainFile)

	t.Run("yaml", func(t *testing.T) {
		cfg := writeTemp(t, "apta.yaml", "strict: true\nlog_level: warn\n")
		_, logs, err := run(t, "build", train, "--config", cfg)
		assert.ErrorIs(t, err, apta.ErrConflictingLabel)
		assert.NotContains(t, logs, "built APTA")
	})

	t.Run("flagsOverrideFile", func(t *testing.T) {
		cfg := writeTemp(t, "apta.json", `{"strict": true, "sort": "length"}`)
		_, _, err := run(t, "build", train, "--config", cfg, "--strict=false")
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := writeTemp(t, "apta.yaml", "strict: [\n")
		_, _, err := run(t, "build", train, "--config", cfg)
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestDotCommand(t *testing.T) {
	train := writeTemp(t, "train.a", trainFile)
	out, _, err := run(t, "dot", train, "--top-down")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
	assert.Contains(t, out, "null -> q0;")
	assert.NotContains(t, out, "rankdir")
}

func TestExportCommand(t *testing.T) {
	train := writeTemp(t, "train.a", trainFile)

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "export", train)
		require.NoError(t, err)
		var snap apta.Snapshot
		require.NoError(t, json.Unmarshal([]byte(out), &snap))
		assert.Len(t, snap.States, 5)
		assert.Len(t, snap.Transitions, 4)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := run(t, "export", train, "--format", "yaml")
		require.NoError(t, err)
		var dfa apta.DFA
		require.NoError(t, yaml.Unmarshal([]byte(out), &dfa))
		assert.Equal(t, 5, dfa.NumStates())
		assert.Equal(t, apta.ACCEPTING, dfa.Classify([]apta.Symbol{0, 1}))
	})

	t.Run("unknownFormat", func(t *testing.T) {
		_, _, err := run(t, "export", train, "--format", "xml")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "apta ")
}
