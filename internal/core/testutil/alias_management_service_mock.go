package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockAliasManagementService is a mock implementation of ports.AliasManagementService.
type MockAliasManagementService struct {
	AddAliasFunc    func(name, commandName string) (bool, error)
	ListAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockAliasManagementService) AddAlias(name, commandName string) (bool, error) {
	if m.AddAliasFunc != nil {
		return m.AddAliasFunc(name, commandName)
	}
	return true, nil
}

func (m *MockAliasManagementService) ListAliases() ([]alias.Alias, error) {
	if m.ListAliasesFunc != nil {
		return m.ListAliasesFunc()
	}
	return nil, nil
}

var _ ports.AliasManagementService = (*MockAliasManagementService)(nil)
