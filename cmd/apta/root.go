package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/apta/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the resolved config and logger from the root command to its subcommands.
type app struct {
	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: logging.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "apta",
		Short: "Build augmented prefix tree acceptors from labeled string samples",
		Long: `apta reads Abbadingo-format samples of accepting, rejecting and unlabeled strings
and builds the augmented prefix tree acceptor (APTA) for them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBuildCmd(a), newDotCmd(a), newExportCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	cfg.applyFlags(cmd.Flags())

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
