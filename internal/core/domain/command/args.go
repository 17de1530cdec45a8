package command

// Args holds the values bound for one call, one slot per declared parameter.
// Variadic slots hold every converted token.
type Args struct {
	values  []any
	present []bool
}

// NewArgs builds bound arguments directly, mainly for tests of typed bodies.
// A nil value marks an absent optional slot.
func NewArgs(values ...any) Args {
	present := make([]bool, len(values))
	for i, v := range values {
		present[i] = v != nil
	}
	return Args{values: values, present: present}
}

// Len returns the number of parameter slots.
func (a Args) Len() int { return len(a.values) }

// Present reports whether slot i was bound.
func (a Args) Present(i int) bool {
	return i >= 0 && i < len(a.present) && a.present[i]
}

// Lookup returns slot i as T and whether it was bound to a value of that type.
func Lookup[T any](a Args, i int) (T, bool) {
	var zero T
	if !a.Present(i) {
		return zero, false
	}
	v, ok := a.values[i].(T)
	return v, ok
}

// Get returns slot i as T, or the zero value when absent.
func Get[T any](a Args, i int) T {
	v, _ := Lookup[T](a, i)
	return v
}

// Rest returns the elements of variadic slot i as T.
// It is nil when the slot is absent and empty when it was bound to no tokens.
func Rest[T any](a Args, i int) []T {
	if !a.Present(i) {
		return nil
	}
	items, _ := a.values[i].([]any)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// String returns slot i as a string.
func (a Args) String(i int) string { return Get[string](a, i) }

// Strings returns variadic slot i as strings.
func (a Args) Strings(i int) []string { return Rest[string](a, i) }
