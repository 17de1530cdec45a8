package testutil

import (
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

// RecordingHandler is a command.Handler that records every call it receives.
type RecordingHandler struct {
	mu    sync.Mutex
	calls [][]string
	// Err is returned from every call.
	Err error
}

// Call implements command.Handler.
func (h *RecordingHandler) Call(args []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, append([]string{}, args...))
	return h.Err
}

// Calls returns the number of invocations so far.
func (h *RecordingHandler) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.calls)
}

// LastArgs returns the tokens of the most recent call, or nil.
func (h *RecordingHandler) LastArgs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.calls) == 0 {
		return nil
	}
	return h.calls[len(h.calls)-1]
}

var _ command.Handler = (*RecordingHandler)(nil)
