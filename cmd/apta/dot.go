package main

import (
	"github.com/geange/apta"
	"github.com/spf13/cobra"
)

func newDotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Print the APTA of a sample as a Graphviz digraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dfa, err := a.buildFromFile(args[0])
			if err != nil {
				return err
			}
			return dfa.WriteDOT(cmd.OutOrStdout(), apta.DOTOptions{TopDown: a.cfg.TopDown})
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().Bool("top-down", false, "Lay out top to bottom instead of left to right")
	return cmd
}
