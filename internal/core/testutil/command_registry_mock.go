package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockCommandRegistry is a mock implementation of ports.CommandRegistry.
type MockCommandRegistry struct {
	FindFunc func(name string) (*command.Descriptor, bool)
	AllFunc  func() []*command.Descriptor
	// FindCalls keeps track of the names passed to Find.
	FindCalls []string
}

// Find implements the ports.CommandRegistry interface.
func (m *MockCommandRegistry) Find(name string) (*command.Descriptor, bool) {
	m.FindCalls = append(m.FindCalls, name)
	if m.FindFunc != nil {
		return m.FindFunc(name)
	}
	return nil, false
}

// All implements the ports.CommandRegistry interface.
func (m *MockCommandRegistry) All() []*command.Descriptor {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return nil
}

// NewStaticRegistry returns a mock registry backed by descriptors, resolving
// names first and then aliases in slice order.
func NewStaticRegistry(descriptors ...*command.Descriptor) *MockCommandRegistry {
	return &MockCommandRegistry{
		FindFunc: func(name string) (*command.Descriptor, bool) {
			for _, d := range descriptors {
				if d.Name() == name {
					return d, true
				}
			}
			for _, d := range descriptors {
				if d.HasAlias(name) {
					return d, true
				}
			}
			return nil, false
		},
		AllFunc: func() []*command.Descriptor { return descriptors },
	}
}

var _ ports.CommandRegistry = (*MockCommandRegistry)(nil)
