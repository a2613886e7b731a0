package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// RunInput contains parameters for a glob run.
	RunInput struct {
		Pattern string `json:"pattern" jsonschema:"Glob pattern to expand; a ** segment spans directory levels"`
		Exclude string `json:"exclude,omitempty" jsonschema:"Semicolon-separated exclusion globs (optional)"`
		Command string `json:"command" jsonschema:"Command template; every {} is replaced with the quoted file path"`
	}

	// RunOutput contains the result of a glob run.
	RunOutput struct {
		Processed int    `json:"processed"`
		ExitCode  int    `json:"exitCode"`
		Failed    string `json:"failed,omitempty"`
		Output    string `json:"output,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run",
		Description: "Expand a glob pattern and run a shell command once per matching file, substituting every {} with the quoted path. Paths matching the exclusion list are skipped. Stops at the first non-zero exit code and reports it.",
	}, handleRun)
}
