package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

func (e *Env) Pwd() command.Spec {
	return command.Spec{
		Name:        "pwd",
		Description: "Print the current directory",
		Run: func(command.Args) error {
			dir, err := os.Getwd()
			if err != nil {
				return command.Failuref("Error retrieving current directory: %w", err)
			}
			fmt.Fprintln(e.Out, ui.SuccessColor(dir))
			return nil
		},
	}
}

func (e *Env) Whoami() command.Spec {
	return command.Spec{
		Name:        "whoami",
		Description: "Print the current user",
		Run: func(command.Args) error {
			fmt.Fprintln(e.Out, ui.PromptColor(e.Username()))
			return nil
		},
	}
}

func (e *Env) Cls() command.Spec {
	return command.Spec{
		Name:        "cls",
		Description: "Clears the screen",
		Run: func(command.Args) error {
			fmt.Fprint(e.Out, clearScreen)
			return nil
		},
	}
}

func (e *Env) Time() command.Spec {
	return command.Spec{
		Name:        "time",
		Description: "Shows the current time",
		Run: func(command.Args) error {
			fmt.Fprintf(e.Out, "Time is %s\n", e.Now().Format("15 : 04 : 05"))
			return nil
		},
	}
}

// Exit ends the session. The REPL stops when it sees command.ErrExit.
func (e *Env) Exit() command.Spec {
	return command.Spec{
		Name:        "exit",
		Description: "Exit the shell",
		Aliases:     []string{"quit", "bye"},
		Run:         func(command.Args) error { return command.ErrExit },
	}
}

func (e *Env) Echo() command.Spec {
	return command.Spec{
		Name:        "echo",
		Description: "Print the given text",
		Params:      []command.Param{command.OptionalVariadic("text", convert.String)},
		Run: func(a command.Args) error {
			fmt.Fprintln(e.Out, strings.Join(a.Strings(0), " "))
			return nil
		},
	}
}

/*
Help prints one command's details, or every command in registration order.
A command is looked up by name or alias.
*/
func (e *Env) Help() command.Spec {
	return command.Spec{
		Name:        "help",
		Description: "Displays help information",
		Params:      []command.Param{command.Optional("command", convert.String)},
		Run: func(a command.Args) error {
			if e.Registry == nil {
				return command.Failure("command registry is not available")
			}
			if name, ok := command.Lookup[string](a, 0); ok {
				d, found := e.Registry.Find(name)
				if !found {
					return &command.NotFoundError{Name: name}
				}
				fmt.Fprintf(e.Out, "name: %s\n", ui.CommandNameColor(d.Name()))
				if d.Description() != "" {
					fmt.Fprintf(e.Out, "description: %s\n", d.Description())
				}
				if aliases := d.Aliases(); len(aliases) > 0 {
					fmt.Fprintf(e.Out, "aliases: %s\n", ui.AliasNameColor(strings.Join(aliases, ", ")))
				}
				fmt.Fprintf(e.Out, "usage: %s\n", ui.UsageColor(d.Usage()))
				return nil
			}

			fmt.Fprintln(e.Out)
			for _, d := range e.Registry.All() {
				if d.Description() == "" {
					fmt.Fprintln(e.Out, ui.CommandNameColor(d.Name()))
					continue
				}
				fmt.Fprintf(e.Out, "%s:\t%s\n", ui.CommandNameColor(d.Name()), d.Description())
			}
			fmt.Fprintln(e.Out)
			return nil
		},
	}
}
