package convert

import (
	"fmt"
	"sort"
)

/*
Table maps type tags to converters.
A table is populated during startup and only read afterwards; it is not safe
for concurrent registration.
*/
type Table struct {
	converters map[Type]Converter
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{converters: make(map[Type]Converter)}
}

// NewBuiltinTable creates a table preloaded with Builtins.
func NewBuiltinTable() *Table {
	t := NewTable()
	for _, c := range Builtins() {
		// Builtins never repeat a tag.
		_ = t.Register(c)
	}
	return t
}

// Register adds c to the table. A tag can only be registered once.
func (t *Table) Register(c Converter) error {
	if c == nil {
		return fmt.Errorf("converter cannot be nil")
	}
	if c.Type() == "" {
		return fmt.Errorf("converter type cannot be empty")
	}
	if _, exists := t.converters[c.Type()]; exists {
		return fmt.Errorf("converter for type %s already registered", c.Type())
	}
	t.converters[c.Type()] = c
	return nil
}

// Lookup returns the converter registered for typ.
func (t *Table) Lookup(typ Type) (Converter, bool) {
	c, ok := t.converters[typ]
	return c, ok
}

// Types lists registered tags in lexical order.
func (t *Table) Types() []Type {
	types := make([]Type, 0, len(t.converters))
	for typ := range t.converters {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
