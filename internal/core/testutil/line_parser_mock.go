package testutil

import (
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/line"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockLineParser is a mock implementation of ports.LineParser.
// Without ParseFunc it splits on whitespace.
type MockLineParser struct {
	ParseFunc  func(input string) line.Parsed
	ParseCalls []string
}

// Parse implements the ports.LineParser interface.
func (m *MockLineParser) Parse(input string) line.Parsed {
	m.ParseCalls = append(m.ParseCalls, input)
	if m.ParseFunc != nil {
		return m.ParseFunc(input)
	}
	fields := strings.Fields(input)
	p := line.Parsed{Original: input}
	if len(fields) > 0 {
		p.Name = fields[0]
		p.Args = fields[1:]
	}
	return p
}

var _ ports.LineParser = (*MockLineParser)(nil)
