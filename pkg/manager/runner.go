package manager

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
)

// Command describes one invocation of a package manager program.
type Command struct {
	Name string
	Args []string
	// Sudo runs the command through sudo.
	Sudo bool
	// Env is appended to the current environment.
	Env []string
}

// Argv returns the full argument vector, including sudo when requested.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+2)
	if c.Sudo {
		argv = append(argv, "sudo")
	}
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Runner executes package manager commands.
type Runner interface {
	// Output runs cmd and returns its captured stdout.
	Output(ctx context.Context, cmd Command) (string, error)

	// Run runs cmd attached to the terminal so the program can prompt.
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as local processes.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) command(ctx context.Context, cmd Command) *exec.Cmd {
	argv := cmd.Argv()
	logging.LogCommand(argv[0], argv[1:])

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	return c
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, cmd Command) (string, error) {
	c := r.command(ctx, cmd)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return stdout.String(), commandError(cmd, err, stderr.String())
	}
	return stdout.String(), nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := r.command(ctx, cmd)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	if err := c.Run(); err != nil {
		return commandError(cmd, err, "")
	}
	return nil
}

// commandError classifies a process failure. A program missing from PATH
// is ErrNotFound; anything else is ErrManager.
func commandError(cmd Command, err error, stderr string) error {
	if stderrors.Is(err, exec.ErrNotFound) {
		return errors.Wrapf(err, errors.ErrNotFound, "'%s' was not found", cmd.Argv()[0]).
			WithDetail("command", cmd.String())
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = "command failed"
	}
	return errors.Wrapf(err, errors.ErrManager, "%s: %s", cmd.String(), msg).
		WithDetail("command", cmd.String()).
		WithDetail("exit_code", exitCode)
}

// splitLines returns the trimmed, non-empty lines of out.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// listOutput runs a listing command and applies the "absent result" rule:
// a missing program yields nil, nil so callers report PackagesNotFound.
func listOutput(ctx context.Context, runner Runner, kind Kind, cmd Command) ([]string, error) {
	out, err := runner.Output(ctx, cmd)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			logger := logging.GetLogger("manager")
			logger.Error().Err(err).Str("manager", kind.String()).Msg("Program not found")
			return nil, nil
		}
		return nil, withManager(err, kind)
	}
	return splitLines(out), nil
}

// withManager tags a runner error with the manager kind.
func withManager(err error, kind Kind) error {
	var pkgErr *errors.PkglsError
	if stderrors.As(err, &pkgErr) {
		pkgErr.WithDetail("manager", kind.String())
		return pkgErr
	}
	return errors.Wrapf(err, errors.ErrManager, "%s failed", kind).WithDetail("manager", kind.String())
}
