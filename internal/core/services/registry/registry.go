package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle phase of a Registry.
type State int32

const (
	StateBuilding State = iota
	StateFrozen
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// ErrFrozen is returned when registering into a frozen registry.
var ErrFrozen = errors.New("registry is frozen")

// ErrDuplicate is matched by every *CollisionError.
var ErrDuplicate = errors.New("duplicate command name or alias")

// CollisionError reports a token claimed by two commands.
type CollisionError struct {
	Token    string
	Existing string // command that already owns Token
	Incoming string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("'%s' of command '%s' is already used by command '%s'", e.Token, e.Incoming, e.Existing)
}

func (e *CollisionError) Is(target error) bool { return target == ErrDuplicate }

/*
Registry is the process-wide command table.

It starts in StateBuilding, where Register inserts descriptors, and moves to
StateFrozen on Freeze. Registration takes a lock; lookups never do, so they
must only run concurrently once the registry is frozen.
*/
type Registry struct {
	mu      sync.Mutex
	state   atomic.Int32
	policy  DuplicatePolicy
	order   []*command.Descriptor
	names   map[string]*command.Descriptor
	aliases map[string]*command.Descriptor // first registered owner of each alias
	logger  *logrus.Entry
}

// New creates an empty registry in StateBuilding.
func New(policy DuplicatePolicy, logger *logrus.Entry) *Registry {
	if policy == "" {
		policy = RejectDuplicates
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Registry{
		policy:  policy,
		names:   make(map[string]*command.Descriptor),
		aliases: make(map[string]*command.Descriptor),
		logger:  logger.WithField("component", "registry"),
	}
}

// Register inserts d. Under RejectDuplicates any token already claimed by
// another command is an error; under FirstWins the earlier owner keeps it.
func (r *Registry) Register(d *command.Descriptor) error {
	if d == nil {
		return errors.New("descriptor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State() == StateFrozen {
		return ErrFrozen
	}

	collisions := r.collisions(d)
	if len(collisions) > 0 {
		if r.policy == RejectDuplicates {
			return collisions[0]
		}
		for _, c := range collisions {
			r.logger.WithFields(logrus.Fields{
				"token":    c.Token,
				"owner":    c.Existing,
				"incoming": c.Incoming,
			}).Warn("duplicate command token, earlier registration keeps it")
		}
	}

	r.order = append(r.order, d)
	if _, exists := r.names[d.Name()]; !exists {
		r.names[d.Name()] = d
	}
	for _, a := range d.Aliases() {
		if _, exists := r.aliases[a]; !exists {
			r.aliases[a] = d
		}
	}

	r.logger.WithFields(logrus.Fields{
		"command": d.Name(),
		"aliases": d.Aliases(),
		"arity":   d.ArityString(),
	}).Debug("command registered")
	return nil
}

func (r *Registry) collisions(d *command.Descriptor) []*CollisionError {
	var out []*CollisionError
	tokens := append([]string{d.Name()}, d.Aliases()...)
	for _, tok := range tokens {
		if owner, ok := r.names[tok]; ok {
			out = append(out, &CollisionError{Token: tok, Existing: owner.Name(), Incoming: d.Name()})
			continue
		}
		if owner, ok := r.aliases[tok]; ok {
			out = append(out, &CollisionError{Token: tok, Existing: owner.Name(), Incoming: d.Name()})
		}
	}
	return out
}

// Freeze ends the building phase. Calling it again has no effect.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.State() == StateFrozen {
		return
	}
	r.state.Store(int32(StateFrozen))
	r.logger.WithField("commands", len(r.order)).Debug("registry frozen")
}

// State returns the current lifecycle phase.
func (r *Registry) State() State { return State(r.state.Load()) }

// Frozen reports whether the registry accepts no more registrations.
func (r *Registry) Frozen() bool { return r.State() == StateFrozen }

// Find implements ports.CommandRegistry. Names take precedence over aliases.
func (r *Registry) Find(name string) (*command.Descriptor, bool) {
	if d, ok := r.names[name]; ok {
		return d, true
	}
	d, ok := r.aliases[name]
	return d, ok
}

// All implements ports.CommandRegistry.
func (r *Registry) All() []*command.Descriptor {
	return append([]*command.Descriptor(nil), r.order...)
}

var _ ports.CommandRegistry = (*Registry)(nil)
