package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/alias"

// AliasOverlayProvider sources extra command aliases from outside the command definitions.
type AliasOverlayProvider interface {
	// GetAliasOverlays loads every overlay entry. A missing source yields no entries.
	GetAliasOverlays() ([]alias.Alias, error)

	// AddAliasOverlay persists a new entry. It returns false if the alias name
	// is already present in the source.
	AddAliasOverlay(newAlias alias.Alias) (bool, error)
}
