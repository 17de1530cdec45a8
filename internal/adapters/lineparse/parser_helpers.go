package lineparse

import (
	"strings"
	"unicode"
)

/*
tokenize splits s on unquoted whitespace.

Double quotes group words and are dropped; "" yields an empty token.
A backslash makes the next rune literal, inside or outside quotes.
An unterminated quote runs to the end of the line.
*/
func (p *Parser) tokenize(s string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	isEscaped := false
	inToken := false

	for _, r := range s {
		if isEscaped {
			current.WriteRune(r)
			isEscaped = false
			continue
		}

		switch {
		case r == '\\':
			isEscaped = true
			inToken = true
		case r == '"':
			inQuotes = !inQuotes
			inToken = true
		case unicode.IsSpace(r) && !inQuotes:
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if isEscaped {
		current.WriteRune('\\')
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens
}
