package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockHistoryProvider is a mock implementation of the ports.HistoryProvider interface.
type MockHistoryProvider struct {
	RecordFunc                func(line string) error
	GetCommandFrequenciesFunc func(scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetSourceIdentifierFunc   func() string
	// Recorded keeps every line passed to Record.
	Recorded []string
}

// Record mocks the Record method.
func (m *MockHistoryProvider) Record(line string) error {
	m.Recorded = append(m.Recorded, line)
	if m.RecordFunc != nil {
		return m.RecordFunc(line)
	}
	return nil
}

// GetCommandFrequencies mocks the GetCommandFrequencies method.
func (m *MockHistoryProvider) GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	if m.GetCommandFrequenciesFunc != nil {
		return m.GetCommandFrequenciesFunc(scanLimit, outputLimit)
	}
	return nil, nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockHistoryProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock_history"
}

var _ ports.HistoryProvider = (*MockHistoryProvider)(nil)
