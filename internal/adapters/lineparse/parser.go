package lineparse

import (
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/line"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// shellMetaChars are recognised but never interpreted.
const shellMetaChars = "|&;<>()"

// Parser splits REPL input into a command name and its argument tokens.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() ports.LineParser {
	return &Parser{}
}

// Parse tokenizes input. The first token is the command name.
func (p *Parser) Parse(input string) line.Parsed {
	tokens := p.tokenize(strings.TrimSpace(input))
	parsed := line.Parsed{Original: input}
	if len(tokens) == 0 {
		return parsed
	}
	parsed.Name = tokens[0]
	if len(tokens) > 1 {
		parsed.Args = tokens[1:]
	}
	parsed.IsComplex = strings.ContainsAny(input, shellMetaChars)
	return parsed
}
