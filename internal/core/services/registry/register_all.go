/*
Package registry builds and serves the command table.

Command-defining units expose a Provider. RegisterAll collects every provider
once at startup, builds and registers the descriptors, and freezes the table
before it is handed to the dispatcher.
*/
package registry

import (
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/sirupsen/logrus"
)

// Provider returns the declaration of one command.
type Provider func() command.Spec

// Options configures RegisterAll.
type Options struct {
	Policy     DuplicatePolicy
	Converters *convert.Table // defaults to the built-in table
	Overlay    []alias.Alias  // extra aliases, applied by command name before building
	Logger     *logrus.Entry
}

/*
RegisterAll builds a frozen registry from providers, in the order given.
Any invalid definition or rejected collision aborts startup with an error.
Overlay entries that target an unknown command are skipped with a warning.
*/
func RegisterAll(opts Options, providers ...Provider) (*Registry, error) {
	if opts.Converters == nil {
		opts.Converters = convert.NewBuiltinTable()
	}
	reg := New(opts.Policy, opts.Logger)

	specs := make([]command.Spec, 0, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		specs = append(specs, p())
	}
	applyOverlay(specs, opts.Overlay, reg.logger)

	for _, spec := range specs {
		d, err := command.Build(spec, opts.Converters)
		if err != nil {
			return nil, fmt.Errorf("building command %q: %w", spec.Name, err)
		}
		if err := reg.Register(d); err != nil {
			return nil, fmt.Errorf("registering command %q: %w", d.Name(), err)
		}
	}

	reg.Freeze()
	reg.logger.WithField("commands", len(reg.order)).Info("command registry ready")
	return reg, nil
}

func applyOverlay(specs []command.Spec, overlay []alias.Alias, logger *logrus.Entry) {
	byName := make(map[string]int, len(specs))
	for i, s := range specs {
		if _, exists := byName[s.Name]; !exists {
			byName[s.Name] = i
		}
	}
	for _, o := range overlay {
		i, ok := byName[o.Command]
		if !ok {
			logger.WithFields(logrus.Fields{"alias": o.Name, "command": o.Command}).
				Warn("alias overlay targets an unknown command, skipping")
			continue
		}
		if o.Name == specs[i].Name || containsString(specs[i].Aliases, o.Name) {
			continue
		}
		// Copy so the provider's slice is never modified.
		specs[i].Aliases = append(append([]string(nil), specs[i].Aliases...), o.Name)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
