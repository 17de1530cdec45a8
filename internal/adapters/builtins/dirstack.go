package builtins

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
)

// dirStack is the pushd/popd stack. The most recent entry is last.
type dirStack struct {
	mu      sync.Mutex
	entries []string
}

func (e *Env) Pushd() command.Spec {
	return command.Spec{
		Name:        "pushd",
		Description: "Save the current directory and change to another",
		Params:      []command.Param{command.Required("dir", convert.Path)},
		Run: func(a command.Args) error {
			e.dirs.mu.Lock()
			defer e.dirs.mu.Unlock()

			cwd, err := os.Getwd()
			if err != nil {
				return command.Failuref("Cannot access current directory: %w", err)
			}
			if err := os.Chdir(a.String(0)); err != nil {
				return command.Failuref("Error changing directory: %w", err)
			}
			e.dirs.entries = append(e.dirs.entries, cwd)
			return e.printDirsLocked()
		},
	}
}

func (e *Env) Popd() command.Spec {
	return command.Spec{
		Name:        "popd",
		Description: "Return to the most recently pushed directory",
		Run: func(command.Args) error {
			e.dirs.mu.Lock()
			defer e.dirs.mu.Unlock()

			n := len(e.dirs.entries)
			if n == 0 {
				return command.Failure("Directory stack is empty")
			}
			top := e.dirs.entries[n-1]
			if err := os.Chdir(top); err != nil {
				return command.Failuref("Error changing directory: %w", err)
			}
			e.dirs.entries = e.dirs.entries[:n-1]
			return e.printDirsLocked()
		},
	}
}

func (e *Env) Dirs() command.Spec {
	return command.Spec{
		Name:        "dirs",
		Description: "Show the directory stack",
		Run: func(command.Args) error {
			e.dirs.mu.Lock()
			defer e.dirs.mu.Unlock()
			return e.printDirsLocked()
		},
	}
}

// printDirsLocked prints the working directory followed by the stack, newest first.
func (e *Env) printDirsLocked() error {
	cwd, err := os.Getwd()
	if err != nil {
		return command.Failuref("Cannot access current directory: %w", err)
	}
	out := []string{cwd}
	for i := len(e.dirs.entries) - 1; i >= 0; i-- {
		out = append(out, e.dirs.entries[i])
	}
	fmt.Fprintln(e.Out, strings.Join(out, " "))
	return nil
}
