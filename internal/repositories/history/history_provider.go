package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/history"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

/*
HistoryProvider stores REPL input lines in a plain text file, one per line.
It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	HistoryFile      string // absolute path
	sourceIdentifier string // user-friendly path for display
	mu               sync.Mutex
}

// NewHistoryProvider creates a file-based history provider.
// The file and its directory are created on the first Record.
func NewHistoryProvider(historyFile string) (ports.HistoryProvider, error) {
	if historyFile == "" {
		return nil, fmt.Errorf("history file path cannot be empty")
	}
	abs, err := filepath.Abs(expandHome(historyFile))
	if err != nil {
		return nil, fmt.Errorf("resolving history file %s: %w", historyFile, err)
	}
	return &HistoryProvider{
		HistoryFile:      abs,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(abs)),
	}, nil
}

func (hp *HistoryProvider) GetSourceIdentifier() string {
	return hp.sourceIdentifier
}

// Record appends line to the history file. Blank lines are ignored.
func (hp *HistoryProvider) Record(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line, "\r\n") {
		return nil
	}

	hp.mu.Lock()
	defer hp.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(hp.HistoryFile), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory for %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	file, err := os.OpenFile(hp.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history file %s for appending: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write to history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	return nil
}

// GetCommandFrequencies implements the ports.HistoryProvider interface.
// It counts the last scanLimit lines and returns at most outputLimit entries,
// most frequent first. A missing history file yields no entries.
func (hp *HistoryProvider) GetCommandFrequencies(scanLimit int, outputLimit int) ([]history.CommandFrequency, error) {
	hp.mu.Lock()
	lines, err := hp.readLines()
	hp.mu.Unlock()
	if err != nil {
		return nil, err
	}

	scanCount := determineScanCount(scanLimit)
	if len(lines) > scanCount {
		lines = lines[len(lines)-scanCount:]
	}
	return countFrequencies(lines, outputLimit), nil
}

func (hp *HistoryProvider) readLines() ([]string, error) {
	file, err := os.Open(hp.HistoryFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning history file %s: %w", toUserFriendlyPath(hp.HistoryFile), err)
	}
	return lines, nil
}
