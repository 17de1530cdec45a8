package semverconv

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
)

func TestConverter_Parse(t *testing.T) {
	c := NewConverter()
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "1.2.3", want: "1.2.3"},
		{raw: "v2.0.0-rc.1", want: "2.0.0-rc.1"},
		{raw: "1.2", want: "1.2.0"},
		{raw: "one", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := c.ParseTyped(tt.raw)
			if tt.wantErr {
				var pe *convert.ParseError
				if !errors.As(err, &pe) || pe.Type != Version || pe.Raw != tt.raw {
					t.Fatalf("ParseTyped(%q) error = %v, want ParseError{version, %q}", tt.raw, err, tt.raw)
				}
				if got, want := err.Error(), "invalid version: '"+tt.raw+"'"; got != want {
					t.Errorf("Error() = %q, want %q", got, want)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTyped(%q) unexpected error: %v", tt.raw, err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseTyped(%q) = %s, want %s", tt.raw, v, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	table := convert.NewBuiltinTable()
	if err := Register(table); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if _, ok := table.Lookup(Version); !ok {
		t.Error("Lookup(version) not found after Register")
	}
	if err := Register(table); err == nil {
		t.Error("Register() twice expected error")
	}
}
