package command

// Handler is the uniform invocation boundary shared by every command.
// It receives the raw tokens that followed the command name.
type Handler interface {
	Call(args []string) error
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(args []string) error

// Call implements Handler.
func (f HandlerFunc) Call(args []string) error { return f(args) }

// boundHandler binds raw tokens against its descriptor before running the typed body.
type boundHandler struct {
	desc *Descriptor
	run  func(Args) error
}

func (h *boundHandler) Call(raw []string) error {
	if err := h.desc.CheckArity(len(raw)); err != nil {
		return err
	}
	args, err := Bind(h.desc, raw)
	if err != nil {
		return err
	}
	return h.run(args)
}
