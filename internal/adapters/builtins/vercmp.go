package builtins

import (
	"fmt"

	"github.com/AntonioJCosta/minish/internal/adapters/semverconv"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/Masterminds/semver/v3"
)

// Vercmp compares two semantic versions. It needs the semverconv converter
// registered in the conversion table.
func (e *Env) Vercmp() command.Spec {
	return command.Spec{
		Name:        "vercmp",
		Description: "Compare two semantic versions",
		Params: []command.Param{
			command.Required("a", semverconv.Version),
			command.Required("b", semverconv.Version),
		},
		Run: func(a command.Args) error {
			left := command.Get[*semver.Version](a, 0)
			right := command.Get[*semver.Version](a, 1)

			op := "="
			switch left.Compare(right) {
			case -1:
				op = "<"
			case 1:
				op = ">"
			}
			fmt.Fprintf(e.Out, "%s %s %s\n", left, op, right)
			return nil
		},
	}
}
