/*
Package command defines the identity and calling contract of a shell command:
its declared parameter shape, the descriptor built from that shape, the
uniform Handler boundary, and the positional binding algorithm that turns raw
tokens into typed arguments.
*/
package command

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
)

// Unbounded is the MaxArity of a command whose last parameter is variadic.
const Unbounded = -1

// Param declares one positional parameter.
type Param struct {
	Name     string       // shown in usage lines
	Type     convert.Type // element type for variadic params
	Optional bool
	Variadic bool
}

// Required declares a mandatory scalar parameter.
func Required(name string, typ convert.Type) Param {
	return Param{Name: name, Type: typ}
}

// Optional declares a trailing scalar parameter that may be absent.
func Optional(name string, typ convert.Type) Param {
	return Param{Name: name, Type: typ, Optional: true}
}

// Variadic declares a trailing parameter consuming every remaining token.
// At least one token is required, so it cannot follow an optional parameter.
func Variadic(name string, typ convert.Type) Param {
	return Param{Name: name, Type: typ, Variadic: true}
}

// OptionalVariadic declares a trailing parameter consuming zero or more tokens.
func OptionalVariadic(name string, typ convert.Type) Param {
	return Param{Name: name, Type: typ, Optional: true, Variadic: true}
}

/*
Spec is what a command-defining unit declares about itself.
Exactly one of Run and Handler must be set: Run receives arguments already
bound against Params, Handler receives the raw tokens.
*/
type Spec struct {
	Name        string
	Description string
	Aliases     []string
	Params      []Param
	Run         func(Args) error
	Handler     Handler
}

/*
Descriptor is the immutable, validated metadata of one command.
Descriptors are only created by Build.
*/
type Descriptor struct {
	name        string
	description string
	aliases     []string
	params      []Param
	converters  []convert.Converter
	minArity    int
	maxArity    int
	handler     Handler
}

// Build validates spec against the converters in table and creates its descriptor.
func Build(spec Spec, table *convert.Table) (*Descriptor, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, &DefinitionError{Reason: "name cannot be empty"}
	}
	if strings.ContainsFunc(name, isSpace) {
		return nil, &DefinitionError{Command: name, Reason: "name cannot contain whitespace"}
	}
	if (spec.Run == nil) == (spec.Handler == nil) {
		return nil, &DefinitionError{Command: name, Reason: "exactly one of Run or Handler must be set"}
	}

	aliases, err := validateAliases(name, spec.Aliases)
	if err != nil {
		return nil, err
	}
	if err := validateShape(name, spec.Params); err != nil {
		return nil, err
	}

	converters := make([]convert.Converter, len(spec.Params))
	for i, p := range spec.Params {
		if table == nil {
			return nil, &DefinitionError{Command: name, Reason: "no converter table for typed parameters"}
		}
		c, ok := table.Lookup(p.Type)
		if !ok {
			return nil, &DefinitionError{Command: name, Reason: fmt.Sprintf("no converter for type %s of parameter %q", p.Type, p.Name)}
		}
		converters[i] = c
	}

	d := &Descriptor{
		name:        name,
		description: spec.Description,
		aliases:     aliases,
		params:      append([]Param(nil), spec.Params...),
		converters:  converters,
		minArity:    0,
		maxArity:    len(spec.Params),
	}
	for _, p := range spec.Params {
		if !p.Optional {
			d.minArity++
		}
		if p.Variadic {
			d.maxArity = Unbounded
		}
	}

	if spec.Handler != nil {
		d.handler = spec.Handler
	} else {
		d.handler = &boundHandler{desc: d, run: spec.Run}
	}
	return d, nil
}

// validateShape enforces a required prefix followed by an optional or variadic suffix,
// with at most one variadic parameter in last position.
func validateShape(name string, params []Param) error {
	seenOptional := false
	seenVariadic := false
	for _, p := range params {
		switch {
		case p.Variadic && seenVariadic:
			return &DefinitionError{Command: name, Reason: "more than one variadic parameter"}
		case seenVariadic:
			return &DefinitionError{Command: name, Reason: fmt.Sprintf("parameter %q follows a variadic parameter", p.Name)}
		case !p.Optional && seenOptional:
			return &DefinitionError{Command: name, Reason: fmt.Sprintf("required parameter %q follows an optional parameter", p.Name)}
		}
		if p.Optional {
			seenOptional = true
		}
		if p.Variadic {
			seenVariadic = true
		}
	}
	return nil
}

func validateAliases(name string, aliases []string) ([]string, error) {
	seen := make(map[string]bool, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		a = strings.TrimSpace(a)
		switch {
		case a == "":
			return nil, &DefinitionError{Command: name, Reason: "alias cannot be empty"}
		case strings.ContainsFunc(a, isSpace):
			return nil, &DefinitionError{Command: name, Reason: fmt.Sprintf("alias %q cannot contain whitespace", a)}
		case a == name:
			return nil, &DefinitionError{Command: name, Reason: "alias repeats the command name"}
		case seen[a]:
			return nil, &DefinitionError{Command: name, Reason: fmt.Sprintf("alias %q declared twice", a)}
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

// Name returns the canonical command name.
func (d *Descriptor) Name() string { return d.name }

// Description returns the one-line summary shown by help and list.
func (d *Descriptor) Description() string { return d.description }

// MinArity returns the number of tokens the command needs at least.
func (d *Descriptor) MinArity() int { return d.minArity }

// MaxArity returns the upper arity bound, or Unbounded.
func (d *Descriptor) MaxArity() int { return d.maxArity }

// Bounded reports whether MaxArity is a finite bound.
func (d *Descriptor) Bounded() bool { return d.maxArity != Unbounded }

// Aliases returns a copy of the declared aliases, in declaration order.
func (d *Descriptor) Aliases() []string { return append([]string(nil), d.aliases...) }

// Params returns a copy of the declared parameters.
func (d *Descriptor) Params() []Param { return append([]Param(nil), d.params...) }

// Handler returns the command's invocation boundary.
func (d *Descriptor) Handler() Handler { return d.handler }

// HasAlias reports whether token is one of the declared aliases.
func (d *Descriptor) HasAlias(token string) bool {
	for _, a := range d.aliases {
		if a == token {
			return true
		}
	}
	return false
}

// CheckArity validates the number of raw tokens for a call.
func (d *Descriptor) CheckArity(given int) error {
	if given < d.minArity {
		return &TooFewArgumentsError{Given: given, Required: d.minArity, Command: d}
	}
	if d.Bounded() && given > d.maxArity {
		return &TooManyArgumentsError{Given: given, Allowed: d.maxArity, Command: d}
	}
	return nil
}

// ArityString renders the arity bounds, e.g. "1", "0-1" or "2+".
func (d *Descriptor) ArityString() string {
	switch {
	case !d.Bounded():
		return fmt.Sprintf("%d+", d.minArity)
	case d.minArity == d.maxArity:
		return fmt.Sprintf("%d", d.minArity)
	default:
		return fmt.Sprintf("%d-%d", d.minArity, d.maxArity)
	}
}

// Usage renders a synopsis such as "repeat <count> <command> [args...]".
func (d *Descriptor) Usage() string {
	var b strings.Builder
	b.WriteString(d.name)
	for _, p := range d.params {
		label := p.Name
		if label == "" {
			label = string(p.Type)
		}
		if p.Variadic {
			label += "..."
		}
		if p.Optional {
			fmt.Fprintf(&b, " [%s]", label)
		} else {
			fmt.Fprintf(&b, " <%s>", label)
		}
	}
	return b.String()
}
