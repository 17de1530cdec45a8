package builtins

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/dustin/go-humanize"
)

// Cd changes the working directory, or prints it when called without arguments.
func (e *Env) Cd() command.Spec {
	return command.Spec{
		Name:        "cd",
		Description: "Print the current directory, or change it",
		Params:      []command.Param{command.Optional("dir", convert.Path)},
		Run: func(a command.Args) error {
			if dir, ok := command.Lookup[string](a, 0); ok {
				if err := os.Chdir(dir); err != nil {
					return command.Failuref("Error changing directory: %w", err)
				}
			}
			if err := e.PrintLocation(); err != nil {
				return command.Failuref("%w", err)
			}
			return nil
		},
	}
}

// Touch creates each file, or updates its modification time if it exists.
func (e *Env) Touch() command.Spec {
	return command.Spec{
		Name:        "touch",
		Description: "Makes new empty files",
		Params:      []command.Param{command.Variadic("paths", convert.Path)},
		Run: func(a command.Args) error {
			for _, path := range a.Strings(0) {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return command.Failuref("Could not create file '%s': %w", path, err)
				}
				if err := f.Close(); err != nil {
					return command.Failuref("Could not create file '%s': %w", path, err)
				}
				now := time.Now()
				if err := os.Chtimes(path, now, now); err != nil {
					return command.Failuref("Could not update file '%s': %w", path, err)
				}
			}
			return nil
		},
	}
}

func (e *Env) Mkdir() command.Spec {
	return command.Spec{
		Name:        "mkdir",
		Description: "Makes a new directory",
		Params:      []command.Param{command.Required("path", convert.Path)},
		Run: func(a command.Args) error {
			path := a.String(0)
			if err := os.Mkdir(path, 0o755); err != nil {
				return command.Failuref("Failed to make directory '%s': %w", path, err)
			}
			return nil
		},
	}
}

func (e *Env) Rmdir() command.Spec {
	return command.Spec{
		Name:        "rmdir",
		Description: "Removes a given directory (if empty)",
		Params:      []command.Param{command.Required("path", convert.Path)},
		Run: func(a command.Args) error {
			path := a.String(0)
			info, err := os.Lstat(path)
			if err != nil {
				return command.Failuref("Failed to remove directory '%s': %w", path, err)
			}
			if !info.IsDir() {
				return command.Failuref("Failed to remove directory '%s': not a directory", path)
			}
			if err := os.Remove(path); err != nil {
				return command.Failuref("Failed to remove directory '%s': %w", path, err)
			}
			return nil
		},
	}
}

func (e *Env) Rm() command.Spec {
	return command.Spec{
		Name:        "rm",
		Description: "Removes a given file or directory (with its contents)",
		Params:      []command.Param{command.Required("path", convert.Path)},
		Run: func(a command.Args) error {
			path := a.String(0)
			info, err := os.Lstat(path)
			if errors.Is(err, fs.ErrNotExist) {
				return command.Failuref("Path '%s' doesn't exist", path)
			}
			if err != nil {
				return command.Failuref("Failed to remove '%s': %w", path, err)
			}
			if info.IsDir() {
				err = os.RemoveAll(path)
			} else {
				err = os.Remove(path)
			}
			if err != nil {
				return command.Failuref("Failed to remove '%s': %w", path, err)
			}
			return nil
		},
	}
}

// Ls prints one row per directory entry, tagged with its kind.
func (e *Env) Ls() command.Spec {
	return command.Spec{
		Name:        "ls",
		Description: "Displays files and folders from the current directory",
		Params:      []command.Param{command.Optional("dir", convert.Path)},
		Run: func(a command.Args) error {
			dir, ok := command.Lookup[string](a, 0)
			if !ok {
				wd, err := os.Getwd()
				if err != nil {
					return command.Failuref("Cannot access current directory: %w", err)
				}
				dir = wd
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return command.Failuref("Error reading directory '%s': %w", dir, err)
			}

			fmt.Fprintln(e.Out)
			for _, entry := range entries {
				fmt.Fprintf(e.Out, "%s\t%s\n", entryKind(entry.Type()), filepath.Join(dir, entry.Name()))
			}
			fmt.Fprintln(e.Out)
			return nil
		},
	}
}

func entryKind(mode fs.FileMode) string {
	switch {
	case mode.IsRegular():
		return "[File]"
	case mode.IsDir():
		return ui.DirEntryColor("[Dir]")
	case mode&fs.ModeSymlink != 0:
		return ui.SymlinkEntryColor("[Symlink]")
	default:
		return ui.OtherEntryColor("[Other]")
	}
}

// Du prints the size of a file, or the total size of the files under a directory.
func (e *Env) Du() command.Spec {
	return command.Spec{
		Name:        "du",
		Description: "Print the size of the file passed",
		Params:      []command.Param{command.Required("path", convert.Path)},
		Run: func(a command.Args) error {
			path := a.String(0)
			size, err := diskUsage(path)
			if err != nil {
				return command.Failuref("Error reading '%s': %w", path, err)
			}
			fmt.Fprintf(e.Out, "Sizeof '%s' is: %s\n", path, humanize.Bytes(size))
			return nil
		},
	}
}

func diskUsage(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return uint64(info.Size()), nil
	}

	var total uint64
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		total += uint64(fi.Size())
		return nil
	})
	return total, err
}

/*
Cat prints the given files. "-" reads standard input. A "> file" or
">> file" pair sends the combined contents to file instead, truncating or
appending. Missing inputs are reported and skipped.
*/
func (e *Env) Cat() command.Spec {
	return command.Spec{
		Name:        "cat",
		Description: "Output given files, or redirect them into another file",
		Params:      []command.Param{command.OptionalVariadic("paths", convert.Path)},
		Run: func(a command.Args) error {
			inputs, target, err := e.readCatInputs(a.Strings(0))
			if err != nil {
				return err
			}
			if target != nil {
				return writeRedirect(*target, inputs)
			}
			for _, in := range inputs {
				if len(in.contents) == 0 {
					fmt.Fprintf(e.Out, "File '%s' is empty.\n", in.name)
					continue
				}
				fmt.Fprintf(e.Out, "\n%s\n\n%s\n", ui.HeaderColor("["+in.name+"]"), in.contents)
			}
			return nil
		},
	}
}

type catInput struct {
	name     string
	contents []byte
}

type redirect struct {
	path   string
	append bool
}

func (e *Env) readCatInputs(tokens []string) ([]catInput, *redirect, error) {
	var inputs []catInput
	var target *redirect

	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok {
		case ">", ">>":
			if target != nil {
				return nil, nil, command.Failure("Output already redirected")
			}
			if i+1 >= len(tokens) {
				return nil, nil, command.Failure("Missing file name after redirection")
			}
			i++
			target = &redirect{path: tokens[i], append: tok == ">>"}
		case "-":
			contents, err := io.ReadAll(e.In)
			if err != nil {
				return nil, nil, command.Failuref("Failed to read from stdin: %w", err)
			}
			inputs = append(inputs, catInput{name: "stdin", contents: contents})
		default:
			info, err := os.Stat(tok)
			if err != nil || !info.Mode().IsRegular() {
				e.Logger.Warnf("file '%s' does not exist", tok)
				continue
			}
			contents, err := os.ReadFile(tok)
			if err != nil {
				return nil, nil, command.Failuref("Failed to open file '%s': %w", tok, err)
			}
			inputs = append(inputs, catInput{name: filepath.Base(tok), contents: contents})
		}
	}
	return inputs, target, nil
}

func writeRedirect(r redirect, inputs []catInput) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if r.append {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(r.path, flags, 0o644)
	if err != nil {
		return command.Failuref("Could not open output file '%s': %w", r.path, err)
	}
	defer f.Close()

	for _, in := range inputs {
		if _, err := f.Write(in.contents); err != nil {
			return command.Failuref("Error writing to output file: %w", err)
		}
	}
	return nil
}
