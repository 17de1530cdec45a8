package line

// Parsed holds the result of tokenizing one input line.
type Parsed struct {
	Original  string
	Name      string   // first token, the command to resolve
	Args      []string // remaining tokens, quotes stripped
	IsComplex bool     // contains shell metacharacters that are not interpreted
}

// Empty reports whether the line held no command.
func (p Parsed) Empty() bool { return p.Name == "" }
