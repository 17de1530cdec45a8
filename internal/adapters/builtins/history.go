package builtins

import (
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
)

const defaultHistoryCount = 10

// HistoryCmd lists the most frequently entered lines.
func (e *Env) HistoryCmd() command.Spec {
	return command.Spec{
		Name:        "history",
		Description: "Show the most frequently used commands",
		Params:      []command.Param{command.Optional("count", convert.Uint)},
		Run: func(a command.Args) error {
			if e.History == nil {
				return command.Failure("history is not available")
			}
			count := defaultHistoryCount
			if n, ok := command.Lookup[uint](a, 0); ok {
				count = int(n)
			}
			if count == 0 {
				return nil
			}

			frequencies, err := e.History.GetCommandFrequencies(0, count)
			if err != nil {
				return command.Failuref("Could not read history: %w", err)
			}
			if len(frequencies) == 0 {
				fmt.Fprintln(e.Out, ui.InfoColor("No history yet."))
				return nil
			}
			fmt.Fprintln(e.Out, ui.DetailColor(e.History.GetSourceIdentifier()))
			for _, f := range frequencies {
				fmt.Fprintf(e.Out, "%5d  %s\n", f.Count, f.Command)
			}
			return nil
		},
	}
}
