package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockAliasOverlayProvider is a mock implementation of ports.AliasOverlayProvider.
type MockAliasOverlayProvider struct {
	GetAliasOverlaysFunc func() ([]alias.Alias, error)
	AddAliasOverlayFunc  func(newAlias alias.Alias) (bool, error)
}

func (m *MockAliasOverlayProvider) GetAliasOverlays() ([]alias.Alias, error) {
	if m.GetAliasOverlaysFunc != nil {
		return m.GetAliasOverlaysFunc()
	}
	return nil, nil
}

func (m *MockAliasOverlayProvider) AddAliasOverlay(newAlias alias.Alias) (bool, error) {
	if m.AddAliasOverlayFunc != nil {
		return m.AddAliasOverlayFunc(newAlias)
	}
	return true, nil
}

var _ ports.AliasOverlayProvider = (*MockAliasOverlayProvider)(nil)
