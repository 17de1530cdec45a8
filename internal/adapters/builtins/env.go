/*
Package builtins defines the commands minish ships with.

Each command is declared by a provider method on Env that returns its
command.Spec. Env carries the streams and services the command bodies use;
the services that depend on the finished registry (Registry, Dispatcher,
Aliases) are assigned after registration and read only when a command runs.
*/
package builtins

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/registry"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/sirupsen/logrus"
)

// Env is the shared state of the built-in commands.
type Env struct {
	In  io.Reader
	Out io.Writer

	Registry   ports.CommandRegistry
	Dispatcher ports.Dispatcher
	History    ports.HistoryProvider
	Aliases    ports.AliasManagementService

	Logger   *logrus.Entry
	Now      func() time.Time
	Username func() string

	dirs dirStack
}

// NewEnv creates an Env reading from in and writing to out.
func NewEnv(in io.Reader, out io.Writer, logger *logrus.Entry) *Env {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Env{
		In:       in,
		Out:      out,
		Logger:   logger.WithField("component", "builtins"),
		Now:      time.Now,
		Username: currentUsername,
	}
}

// Providers returns every built-in command, in listing order.
func (e *Env) Providers() []registry.Provider {
	return []registry.Provider{
		e.Help,
		e.Exit,
		e.Pwd,
		e.Whoami,
		e.Cls,
		e.Time,
		e.Echo,
		e.Cd,
		e.Ls,
		e.Touch,
		e.Mkdir,
		e.Rmdir,
		e.Rm,
		e.Cat,
		e.Du,
		e.Pushd,
		e.Popd,
		e.Dirs,
		e.HistoryCmd,
		e.Alias,
		e.Repeat,
		e.Vercmp,
	}
}

// PrintLocation writes "<user> is in <dir>".
func (e *Env) PrintLocation() error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("retrieving current directory: %w", err)
	}
	fmt.Fprintf(e.Out, "%s is in %s\n", ui.PromptColor(e.Username()), ui.SuccessColor(dir))
	return nil
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
