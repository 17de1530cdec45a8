package oscommand

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// OSExecutableRunner implements the ExecutableRunner interface by spawning
// programs found on PATH.
type OSExecutableRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutableRunner creates a runner that inherits the process's standard streams.
func NewOSExecutableRunner() ports.ExecutableRunner {
	return &OSExecutableRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

/*
Run starts name with args and waits for it to exit.

Errors use the command package kinds so callers can report them like any
other command failure:
  - program not found: *command.NotFoundError
  - not executable: Failure("Permission denied for '<name>'")
  - non-zero exit: Failure("Program '<name>' exited with code: '<code>'")
*/
func (r *OSExecutableRunner) Run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return command.Failuref("Program '%s' exited with code: '%d'", name, exitErr.ExitCode())
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return &command.NotFoundError{Name: name}
	case errors.Is(err, os.ErrPermission):
		return command.Failuref("Permission denied for '%s'", name)
	default:
		return command.Failuref("Could not run '%s': %w", name, err)
	}
}
