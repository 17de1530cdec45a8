/*
Package repl implements the interactive read-dispatch loop.

Each line is tokenized, recorded in history and dispatched. Names no
registered command claims are run as external programs when a runner is set.
Command errors are logged and the loop continues; command.ErrExit ends it.
*/
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/sirupsen/logrus"
)

// Config holds the REPL's collaborators. Runner and History may be nil.
type Config struct {
	Prompt     string
	Parser     ports.LineParser
	Dispatcher ports.Dispatcher
	Runner     ports.ExecutableRunner // nil disables the external fallback
	History    ports.HistoryProvider
	Logger     *logrus.Entry
}

// REPL reads command lines from an input stream until it ends or a command asks to exit.
type REPL struct {
	cfg    Config
	in     io.Reader
	out    io.Writer
	logger *logrus.Entry
}

// New creates a REPL. It panics if the parser or dispatcher is missing.
func New(in io.Reader, out io.Writer, cfg Config) *REPL {
	if cfg.Parser == nil {
		panic("line parser cannot be nil")
	}
	if cfg.Dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &REPL{cfg: cfg, in: in, out: out, logger: logger.WithField("component", "repl")}
}

// Run loops until input ends or a command returns command.ErrExit.
// Only a failure to read input is returned as an error.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, ui.PromptColor(r.cfg.Prompt))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			r.logger.Debug("input closed")
			return nil
		}
		if r.ExecuteLine(scanner.Text()) {
			r.logger.Debug("exit requested")
			return nil
		}
	}
}

// ExecuteLine runs one input line and reports whether the session should end.
func (r *REPL) ExecuteLine(input string) bool {
	parsed := r.cfg.Parser.Parse(input)
	if parsed.Empty() {
		return false
	}

	if r.cfg.History != nil {
		if err := r.cfg.History.Record(input); err != nil {
			r.logger.WithError(err).Warn("could not record history")
		}
	}
	if parsed.IsComplex {
		r.logger.Warn("shell operators are not interpreted; tokens are passed to the command as-is")
	}

	err := r.Execute(parsed.Name, parsed.Args)
	switch {
	case err == nil:
		return false
	case errors.Is(err, command.ErrExit):
		return true
	default:
		r.logger.Error(err.Error())
		return false
	}
}

// Execute dispatches one command, falling back to an external program when
// no registered command has that name. A not-found error raised by a
// resolved command (help or repeat naming an unknown command) is returned as is.
func (r *REPL) Execute(name string, args []string) error {
	err := r.cfg.Dispatcher.Execute(name, args)
	var nf *command.NotFoundError
	if r.cfg.Runner != nil && errors.As(err, &nf) && nf.Name == name {
		r.logger.WithField("program", name).Debug("no such command, running external program")
		return r.cfg.Runner.Run(name, args)
	}
	return err
}
