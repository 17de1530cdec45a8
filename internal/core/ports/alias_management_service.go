package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/alias"

// AliasManagementService validates and stores user-defined command aliases.
type AliasManagementService interface {
	// AddAlias stores name as an alias of commandName.
	// It returns true if the alias was newly added, false if it already existed.
	AddAlias(name, commandName string) (bool, error)

	// ListAliases returns the stored aliases.
	ListAliases() ([]alias.Alias, error)
}
