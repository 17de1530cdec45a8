package builtins

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
)

// Repeat runs another command count times, stopping at the first error.
func (e *Env) Repeat() command.Spec {
	return command.Spec{
		Name:        "repeat",
		Description: "Run a command several times",
		Params: []command.Param{
			command.Required("count", convert.Uint),
			command.Required("command", convert.String),
			command.OptionalVariadic("args", convert.String),
		},
		Run: func(a command.Args) error {
			if e.Dispatcher == nil {
				return command.Failure("dispatcher is not available")
			}
			count := command.Get[uint](a, 0)
			name := a.String(1)
			args := a.Strings(2)
			if args == nil {
				args = []string{}
			}
			for i := uint(0); i < count; i++ {
				if err := e.Dispatcher.Execute(name, args); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
