package registry

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what happens when two commands claim the same name or alias.
type DuplicatePolicy string

const (
	// RejectDuplicates fails registration on any collision.
	RejectDuplicates DuplicatePolicy = "reject"
	// FirstWins keeps the first registered owner of a token and logs a warning.
	FirstWins DuplicatePolicy = "first-wins"
)

// ParsePolicy parses a policy name as written in configuration.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RejectDuplicates:
		return RejectDuplicates, nil
	case FirstWins:
		return FirstWins, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %q or %q)", s, RejectDuplicates, FirstWins)
	}
}
