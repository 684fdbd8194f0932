// Command yamlp filters a streaming sequence of YAML parse events through a
// compact path expression and emits only the selected subtree(s) as
// well-formed YAML.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobcolvin/yamlp/profile"
	"github.com/jacobcolvin/yamlp/version"
)

func main() {
	cfg := NewConfig()

	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:           "yamlp [flags] <path>",
		Short:         "Filter a YAML document through a path expression",
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cfg.Log.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			profiler = cfg.Profile.NewProfiler()

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			widthFlagSet := cmd.Flags().Changed(cfg.Flags.Width)

			return run(cfg, args[0], widthFlagSet, os.Stdin, os.Stdout)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error returned by rootCmd.Execute() to one of the
// CLI's documented exit codes. A *exitError carries its own code; any
// other error (malformed flags, cobra's own argument-count check) is a
// flag-usage problem.
func exitCodeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitBadFlag
}
