package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Print the APTA of a sample as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dfa, err := a.buildFromFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(a.cfg.Format) {
			case "json":
				data, err := json.MarshalIndent(dfa, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(dfa); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q", a.cfg.Format)
			}
		},
	}

	addBuildFlags(cmd)
	cmd.Flags().String("format", "json", "Output format (json, yaml)")
	return cmd
}
