package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasCommand creates the 'alias' subcommand and its 'list' and 'add' children.
func NewAliasCommand(shell func() *Shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage user-defined command aliases.",
		Long:  `Aliases are stored in the alias file (default ~/.minish/aliases.yaml) and apply from the next session.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List user-defined aliases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasListCmd(cmd.OutOrStdout(), shell().Aliases)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <alias> <command>",
		Short: "Add an alias for a built-in command.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasAddCmd(cmd.OutOrStdout(), shell().Aliases, args[0], args[1])
		},
	})

	return cmd
}

func runAliasListCmd(out io.Writer, aliasManagementService ports.AliasManagementService) error {
	aliases, err := aliasManagementService.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No user-defined aliases found."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("User-defined aliases:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
	return nil
}

func runAliasAddCmd(out io.Writer, aliasManagementService ports.AliasManagementService, name, commandName string) error {
	added, err := aliasManagementService.AddAlias(name, commandName)
	if err != nil {
		return fmt.Errorf("could not add alias '%s': %w", name, err)
	}
	if !added {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Alias '%s' already exists. Skipping.", name)))
		return nil
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Added alias '%s' for '%s'.", name, commandName)))
	return nil
}
