// Command yamlp-explore is an interactive terminal viewer for exploring a
// loaded YAML document against live path expressions, re-running the same
// streaming filter the yamlp CLI uses on every keystroke.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"

	"github.com/jacobcolvin/yamlp/log"
	"github.com/jacobcolvin/yamlp/version"
)

func main() {
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "yamlp-explore <file>",
		Short:         "Interactively explore a YAML document with live path expressions",
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			src, err := os.ReadFile(args[0]) //nolint:gosec // File path comes from a CLI argument, as intended.
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}

			m, err := newModel(args[0], src)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(m).Run()

			return err
		},
	}

	logCfg.RegisterFlags(rootCmd.Flags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
