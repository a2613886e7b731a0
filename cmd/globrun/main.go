// Package main implements the globrun command runner.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/zysharp/globrun/internal/config"
	"github.com/zysharp/globrun/internal/exclude"
	"github.com/zysharp/globrun/internal/runner"
)

func main() {
	var (
		pattern     string
		excludeList string
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "globrun --pattern GLOB [--exclude LIST] COMMAND",
		Short: "Run a command once per file matching a glob pattern",
		Long: `globrun expands a glob pattern (a ** segment spans directory levels),
skips paths matching the exclusion list, and runs the given command
once per remaining file, substituting every {} placeholder with the
quoted file path. The first non-zero exit code stops the run and
becomes globrun's own exit code.`,
		Example: `  globrun --pattern '**/*.go' 'gofmt -l {}'
  globrun --pattern 'logs/**/*.log' --exclude '*.gz;*debug*' 'wc -l {}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			patterns := cfg.ResolveExclude(excludeList, cmd.Flags().Changed("exclude"))
			svc := runner.New(
				cfg.ResolveShell(),
				exclude.New(patterns),
				os.Stdin, os.Stdout, os.Stdout, os.Stderr,
			)

			res, err := svc.Run(cmd.Context(), pattern, args[0])
			if err != nil {
				return err
			}
			if res.ExitCode != 0 {
				os.Exit(res.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "glob pattern to expand (required)")
	cmd.Flags().StringVarP(&excludeList, "exclude", "e", "", "semicolon-separated exclusion globs (default $GLOBRUN_EXCLUDE)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	_ = cmd.MarkFlagRequired("pattern")

	cmd.AddCommand(serveCmd())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}
