package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/zysharp/globrun/internal/config"
)

// serveConfig holds the loaded configuration while the server runs.
var serveConfig *config.Config

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose globrun as an MCP tool over stdio",
		Long: `serve speaks the Model Context Protocol on stdin/stdout and registers
a single "run" tool with the same semantics as the command line:
expand a pattern, skip excluded paths, run the command once per
remaining file, stop at the first failure. Child output and progress
lines are captured into the tool result, since stdout carries the
protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			serveConfig = cfg

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "globrun",
				Version: version,
			}, nil)

			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	return cmd
}
