package builtins

import (
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

/*
Alias lists the user's alias file, or stores a new alias in it.
New aliases resolve from the next session, since the command table is
fixed once the shell starts.
*/
func (e *Env) Alias() command.Spec {
	return command.Spec{
		Name:        "alias",
		Description: "List user aliases, or add one for the next session",
		Params: []command.Param{
			command.Optional("name", convert.String),
			command.Optional("command", convert.String),
		},
		Run: func(a command.Args) error {
			if e.Aliases == nil {
				return command.Failure("alias management is not available")
			}
			switch {
			case !a.Present(0):
				return e.listAliases()
			case !a.Present(1):
				return command.Failure("usage: alias <name> <command>")
			}

			name, target := a.String(0), a.String(1)
			added, err := e.Aliases.AddAlias(name, target)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(e.Out, "%s\n", ui.WarningColor(fmt.Sprintf("Alias '%s' already exists. Skipping.", name)))
				return nil
			}
			fmt.Fprintf(e.Out, "%s\n", ui.SuccessColor(fmt.Sprintf("Alias '%s' for '%s' saved; it is available from the next session.", name, target)))
			return nil
		},
	}
}

func (e *Env) listAliases() error {
	aliases, err := e.Aliases.ListAliases()
	if err != nil {
		return command.Failuref("Could not list aliases: %w", err)
	}
	if len(aliases) == 0 {
		fmt.Fprintln(e.Out, ui.InfoColor("No user aliases defined."))
		return nil
	}

	table := tablewriter.NewWriter(e.Out)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, al := range aliases {
		table.Append([]string{al.Name, al.Command})
	}
	table.Render()
	return nil
}
