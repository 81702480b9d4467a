package main

import (
	"fmt"
	"time"

	"github.com/geange/apta"
	"github.com/geange/apta/abbadingo"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build the APTA of a sample and describe it",
		Long: `Reads an Abbadingo file, builds its APTA and prints a summary. With --verbose every
state and transition is listed. Read and build times are logged at info level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dfa, err := a.buildFromFile(args[0])
			if err != nil {
				return err
			}

			if a.cfg.AppendSink {
				sink := apta.CreateState(apta.UNKNOWN, dfa.NumStates())
				if err := dfa.AppendState(sink); err != nil {
					return err
				}
				a.logger.Debug("appended sink state", "index", sink.Index)
			}

			return dfa.Describe(cmd.OutOrStdout(), a.cfg.Verbose)
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().BoolP("verbose", "v", false, "List every state and transition")
	cmd.Flags().Bool("append-sink", false, "Append an unreachable UNKNOWN state after building")
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Fail when a string is both accepting and rejecting")
	cmd.Flags().String("sort", "none", "Input order (none, length, lex)")
	cmd.Flags().Bool("positive-only", false, "Ignore non-accepting strings (plain PTA)")
}

// buildFromFile reads an Abbadingo sample and builds its APTA with the configured options.
func (a *app) buildFromFile(path string) (*apta.DFA, error) {
	start := time.Now()
	dataset, header, err := abbadingo.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("read dataset",
		"file", path,
		"strings", len(dataset),
		"alphabet", header.AlphabetSize,
		"elapsed", time.Since(start))

	opts, err := a.cfg.BuildOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, apta.WithLogger(a.logger))

	start = time.Now()
	dfa, err := apta.BuildPTA(header.Alphabet(), dataset, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", path, err)
	}
	a.logger.Info("built APTA",
		"states", dfa.NumStates(),
		"transitions", dfa.NumTransitions(),
		"depth", dfa.Depth(),
		"elapsed", time.Since(start))

	return dfa, nil
}
