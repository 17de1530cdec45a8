package ports

// Dispatcher resolves a command by name and invokes it with raw tokens.
type Dispatcher interface {
	// Execute returns nil on success, or one of the command package errors.
	// Handler errors are returned unchanged.
	Execute(name string, args []string) error
}
