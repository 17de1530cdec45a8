package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/history"

// HistoryProvider records input lines and reports how often each was entered.
type HistoryProvider interface {
	Record(line string) error
	GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error)
	GetSourceIdentifier() string
}
