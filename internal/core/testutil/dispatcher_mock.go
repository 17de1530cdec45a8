package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// ExecuteCall records one Dispatcher.Execute invocation.
type ExecuteCall struct {
	Name string
	Args []string
}

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	ExecuteFunc  func(name string, args []string) error
	ExecuteCalls []ExecuteCall
}

// Execute implements the ports.Dispatcher interface.
func (m *MockDispatcher) Execute(name string, args []string) error {
	m.ExecuteCalls = append(m.ExecuteCalls, ExecuteCall{Name: name, Args: append([]string(nil), args...)})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args)
	}
	return nil
}

var _ ports.Dispatcher = (*MockDispatcher)(nil)
