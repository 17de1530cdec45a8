package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/line"

/*
LineParser defines the contract for splitting one input line into a command
name and its raw argument tokens.
*/
type LineParser interface {
	Parse(input string) line.Parsed
}
