package dispatch

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type freezer interface {
	Frozen() bool
}

type service struct {
	registry ports.CommandRegistry
	logger   *logrus.Entry
}

// NewService creates a dispatcher over a frozen registry.
// It panics if the registry is nil or still accepting registrations.
func NewService(reg ports.CommandRegistry, logger *logrus.Entry) ports.Dispatcher {
	if reg == nil {
		panic("registry cannot be nil")
	}
	if f, ok := reg.(freezer); ok && !f.Frozen() {
		panic("registry must be frozen before dispatching")
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &service{registry: reg, logger: logger.WithField("component", "dispatch")}
}

/*
Execute resolves name and calls its handler with args.

Not-found and arity errors are produced here before any handler code runs.
Conversion errors come from the handler's own binding step, which aborts
before the command body is invoked. Body errors are returned unchanged.
*/
func (s *service) Execute(name string, args []string) error {
	log := s.logger.WithField("command", name)

	log.Debug("resolving")
	d, ok := s.registry.Find(name)
	if !ok {
		log.Debug("done: not found")
		return &command.NotFoundError{Name: name}
	}

	log = log.WithField("resolved", d.Name())
	log.WithFields(logrus.Fields{"given": len(args), "arity": d.ArityString()}).Debug("arity")
	if err := d.CheckArity(len(args)); err != nil {
		log.WithError(err).Debug("done: arity rejected")
		return err
	}

	log.Debug("invoking")
	err := d.Handler().Call(args)
	switch {
	case err == nil:
		log.Debug("done")
	case errors.Is(err, command.ErrConversion):
		log.WithError(err).Debug("done: binding failed")
	default:
		log.WithError(err).Debug("done: handler failed")
	}
	return err
}
