// Package runner executes a command template once per matched path.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/zysharp/globrun/internal/exclude"
	"github.com/zysharp/globrun/internal/glob"
)

// Placeholder is the token in a command template that is replaced with
// the quoted path of the file being processed.
const Placeholder = "{}"

// Substitute replaces every placeholder in template with path wrapped in
// double quotes. The quoting is deliberately naive: a path containing
// double quotes, or a template that already quotes the placeholder, is
// passed through untouched.
func Substitute(template, path string) string {
	return strings.ReplaceAll(template, Placeholder, `"`+path+`"`)
}

// Result describes a finished run.
type Result struct {
	// Processed counts the matched, non-excluded paths the command ran for.
	Processed int
	// Failed is the path whose command exited non-zero, empty on success.
	Failed string
	// ExitCode is the exit code of the failing command, 0 on success.
	ExitCode int
}

// Service runs a command template over the paths a glob pattern matches.
type Service struct {
	shell    string
	filter   *exclude.Filter
	stdin    io.Reader
	progress io.Writer
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a Service. Commands run as `shell -c <command>` with the
// given stdio; progress receives one line per processed path before its
// command starts.
func New(shell string, filter *exclude.Filter, stdin io.Reader, progress, stdout, stderr io.Writer) *Service {
	return &Service{
		shell:    shell,
		filter:   filter,
		stdin:    stdin,
		progress: progress,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// errStop aborts the walk after a command failure without masking it as
// a walk error.
var errStop = errors.New("run stopped")

// Run expands pattern and executes template once per non-excluded match,
// in match order, synchronously, stopping at the first non-zero exit
// code. The error return covers the machinery only (bad pattern, shell
// missing); a command that ran and failed is reported through Result.
func (s *Service) Run(ctx context.Context, pattern, template string) (Result, error) {
	var res Result

	err := glob.Walk(pattern, func(path string) error {
		if s.filter.Matches(path) {
			return nil
		}

		fmt.Fprintf(s.progress, "processing %s\n", path)
		res.Processed++

		code, err := s.execute(ctx, Substitute(template, path))
		if err != nil {
			return err
		}
		if code != 0 {
			res.Failed = path
			res.ExitCode = code
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return res, err
	}
	return res, nil
}

// execute runs one concrete command through the shell and returns its
// exit code. Commands that the shell cannot find or that fail report
// through the exit code exactly as the shell does.
func (s *Service) execute(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, s.shell, "-c", command)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("running %q: %w", command, err)
}
