package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/command"

/*
CommandRegistry is the read side of the command table.
Once frozen it is immutable and safe for concurrent lookups.
*/
type CommandRegistry interface {
	// Find resolves a command by exact name, then by alias in registration order.
	Find(name string) (*command.Descriptor, bool)

	// All returns every descriptor in registration order.
	All() []*command.Descriptor
}
