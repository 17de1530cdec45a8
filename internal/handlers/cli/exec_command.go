package cli

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/spf13/cobra"
)

// NewExecCommand creates the 'exec' subcommand, which runs a single command and exits.
func NewExecCommand(shell func() *Shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one command without starting the interactive shell.",
		Long: `Runs a built-in command, or a program from PATH, with the given arguments.
Flags after the command name are passed to it unchanged.`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := shell().REPL.Execute(args[0], args[1:])
			if errors.Is(err, command.ErrExit) {
				return nil
			}
			return err
		},
	}
	return cmd
}
