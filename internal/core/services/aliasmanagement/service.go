package aliasmanagement

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

var (
	// ErrInvalidAliasName is returned for names outside [a-zA-Z0-9.].
	ErrInvalidAliasName = errors.New("invalid alias name")
	// ErrAliasInUse is returned when the name already resolves to a command.
	ErrAliasInUse = errors.New("alias name already in use")
)

var validAliasCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9.]+$`)

type service struct {
	overlay  ports.AliasOverlayProvider
	registry ports.CommandRegistry
}

// NewService creates a new alias management service.
// It panics if either dependency is nil.
func NewService(overlay ports.AliasOverlayProvider, reg ports.CommandRegistry) ports.AliasManagementService {
	if overlay == nil {
		panic("overlay provider cannot be nil")
	}
	if reg == nil {
		panic("registry cannot be nil")
	}
	return &service{overlay: overlay, registry: reg}
}

/*
AddAlias stores name as an alias of commandName in the overlay.

commandName may itself be an alias; the stored entry always targets the
command's canonical name. It returns true if the alias was newly added and
false if the overlay already had an entry with that name. The registry is
frozen, so the alias takes effect from the next session.
*/
func (s *service) AddAlias(name, commandName string) (bool, error) {
	if !validAliasCharsRegex.MatchString(name) {
		return false, fmt.Errorf("%w: '%s'", ErrInvalidAliasName, name)
	}
	if owner, exists := s.registry.Find(name); exists {
		return false, fmt.Errorf("%w: '%s' already resolves to command '%s'", ErrAliasInUse, name, owner.Name())
	}
	target, ok := s.registry.Find(commandName)
	if !ok {
		return false, &command.NotFoundError{Name: commandName}
	}

	wasAdded, err := s.overlay.AddAliasOverlay(alias.Alias{Name: name, Command: target.Name()})
	if err != nil {
		return false, fmt.Errorf("failed to add alias '%s': %w", name, err)
	}
	return wasAdded, nil
}

// ListAliases retrieves every alias stored in the overlay.
func (s *service) ListAliases() ([]alias.Alias, error) {
	aliases, err := s.overlay.GetAliasOverlays()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing aliases: %w", err)
	}
	return aliases, nil
}
