package cli

import (
	"github.com/spf13/cobra"
)

/*
NewHelpCommand replaces cobra's help command. A subcommand name shows the
usual cobra help; anything else is looked up as a shell command.
*/
func NewHelpCommand(shell func() *Shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "help [command]",
		Short: "Help about minish subcommands or built-in commands.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				return root.Help()
			}
			if sub, _, err := root.Find(args); err == nil && sub != root {
				return sub.Help()
			}
			return shell().Dispatcher.Execute("help", args)
		},
	}
	return cmd
}
