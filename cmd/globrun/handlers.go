package main

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zysharp/globrun/internal/exclude"
	"github.com/zysharp/globrun/internal/runner"
)

func handleRun(ctx context.Context, req *mcp.CallToolRequest, input RunInput) (*mcp.CallToolResult, RunOutput, error) {
	pattern := strings.TrimSpace(input.Pattern)
	if pattern == "" {
		return &mcp.CallToolResult{IsError: true}, RunOutput{}, errors.New("pattern cannot be empty")
	}
	if strings.TrimSpace(input.Command) == "" {
		return &mcp.CallToolResult{IsError: true}, RunOutput{}, errors.New("command cannot be empty")
	}

	patterns := serveConfig.ResolveExclude(input.Exclude, input.Exclude != "")

	// Child stdio and progress lines go into the result, not the
	// transport. Stdin stays closed for children.
	var out bytes.Buffer
	svc := runner.New(
		serveConfig.ResolveShell(),
		exclude.New(patterns),
		nil, &out, &out, &out,
	)

	res, err := svc.Run(ctx, pattern, input.Command)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RunOutput{}, err
	}

	return nil, RunOutput{
		Processed: res.Processed,
		ExitCode:  res.ExitCode,
		Failed:    res.Failed,
		Output:    out.String(),
	}, nil
}
