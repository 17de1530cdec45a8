package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(shell func() *Shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every built-in command.",
		Long:  `Displays each registered command with its aliases, accepted argument count and description.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd.OutOrStdout(), shell().Registry.All())
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(out io.Writer, commands []*command.Descriptor) error {
	if len(commands) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No commands registered."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Commands:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Aliases", "Args", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, d := range commands {
		table.Append([]string{d.Name(), strings.Join(d.Aliases(), ", "), d.ArityString(), d.Description()})
	}
	table.Render()

	p := message.NewPrinter(language.English)
	fmt.Fprintln(out, ui.DetailColor(p.Sprintf("%d commands", len(commands))))
	return nil
}
