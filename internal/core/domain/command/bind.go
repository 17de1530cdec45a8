package command

/*
Bind converts raw tokens positionally against the descriptor's parameters.

Required scalars must be present. A trailing optional scalar binds absent when
its token is missing. A trailing variadic parameter consumes every remaining
token; with no tokens left it binds an empty sequence when required and absent
when optional. The first failing conversion aborts binding and is returned as is.
*/
func Bind(d *Descriptor, raw []string) (Args, error) {
	values := make([]any, len(d.params))
	present := make([]bool, len(d.params))

	for i, p := range d.params {
		conv := d.converters[i]

		if p.Variadic {
			if len(raw) <= i {
				if !p.Optional {
					values[i] = []any{}
					present[i] = true
				}
				continue
			}
			rest := make([]any, 0, len(raw)-i)
			for _, tok := range raw[i:] {
				v, err := conv.Parse(tok)
				if err != nil {
					return Args{}, err
				}
				rest = append(rest, v)
			}
			values[i] = rest
			present[i] = true
			continue
		}

		if len(raw) <= i {
			if p.Optional {
				continue
			}
			return Args{}, &TooFewArgumentsError{Given: len(raw), Required: d.minArity, Command: d}
		}
		v, err := conv.Parse(raw[i])
		if err != nil {
			return Args{}, err
		}
		values[i] = v
		present[i] = true
	}

	return Args{values: values, present: present}, nil
}
