package ports

// ExecutableRunner runs an external program with the shell's standard streams.
type ExecutableRunner interface {
	Run(name string, args []string) error
}
