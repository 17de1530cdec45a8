package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockExecutableRunner is a mock implementation of ports.ExecutableRunner.
type MockExecutableRunner struct {
	RunFunc  func(name string, args []string) error
	RunCalls []ExecuteCall
}

// Run calls the mock RunFunc.
func (m *MockExecutableRunner) Run(name string, args []string) error {
	m.RunCalls = append(m.RunCalls, ExecuteCall{Name: name, Args: append([]string(nil), args...)})
	if m.RunFunc != nil {
		return m.RunFunc(name, args)
	}
	return errors.New("MockExecutableRunner.RunFunc not implemented")
}

var _ ports.ExecutableRunner = (*MockExecutableRunner)(nil)
