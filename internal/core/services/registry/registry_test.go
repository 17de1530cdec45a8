package registry

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func provide(name string, aliases ...string) Provider {
	return func() command.Spec {
		return command.Spec{Name: name, Aliases: aliases, Run: func(command.Args) error { return nil }}
	}
}

func names(ds []*command.Descriptor) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name())
	}
	return out
}

func TestRegisterAll_FindByNameAndAlias(t *testing.T) {
	reg, err := RegisterAll(Options{Logger: quietLogger()},
		provide("exit", "quit", "bye"),
		provide("pwd"),
	)
	if err != nil {
		t.Fatalf("RegisterAll() unexpected error: %v", err)
	}
	if !reg.Frozen() {
		t.Error("registry not frozen after RegisterAll")
	}

	tests := []struct {
		token    string
		wantName string
		wantOK   bool
	}{
		{"exit", "exit", true},
		{"quit", "exit", true},
		{"bye", "exit", true},
		{"pwd", "pwd", true},
		{"ls", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d, ok := reg.Find(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && d.Name() != tt.wantName {
				t.Errorf("Find(%q) = %s, want %s", tt.token, d.Name(), tt.wantName)
			}
		})
	}
}

func TestRegisterAll_PreservesOrder(t *testing.T) {
	reg, err := RegisterAll(Options{Logger: quietLogger()}, provide("b"), provide("a"), nil, provide("c"))
	if err != nil {
		t.Fatalf("RegisterAll() unexpected error: %v", err)
	}
	if got := names(reg.All()); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("All() = %v, want [b a c]", got)
	}
}

func TestRegisterAll_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		policy    DuplicatePolicy
		providers []Provider
		wantErr   bool
		token     string
		wantOwner string
	}{
		{
			name:      "same name rejected",
			policy:    RejectDuplicates,
			providers: []Provider{provide("ls"), provide("ls")},
			wantErr:   true,
		},
		{
			name:      "alias equals other name rejected",
			policy:    RejectDuplicates,
			providers: []Provider{provide("ls"), provide("dir", "ls")},
			wantErr:   true,
		},
		{
			name:      "shared alias rejected",
			policy:    RejectDuplicates,
			providers: []Provider{provide("cls", "clear"), provide("reset", "clear")},
			wantErr:   true,
		},
		{
			name:      "first wins keeps earlier alias owner",
			policy:    FirstWins,
			providers: []Provider{provide("cls", "clear"), provide("reset", "clear")},
			token:     "clear",
			wantOwner: "cls",
		},
		{
			name:      "first wins keeps name over later alias",
			policy:    FirstWins,
			providers: []Provider{provide("ls"), provide("dir", "ls")},
			token:     "ls",
			wantOwner: "ls",
		},
		{
			name:      "name beats earlier alias",
			policy:    FirstWins,
			providers: []Provider{provide("dir", "ls"), provide("ls")},
			token:     "ls",
			wantOwner: "ls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := RegisterAll(Options{Policy: tt.policy, Logger: quietLogger()}, tt.providers...)
			if tt.wantErr {
				if !errors.Is(err, ErrDuplicate) {
					t.Fatalf("RegisterAll() error = %v, want ErrDuplicate", err)
				}
				var ce *CollisionError
				if !errors.As(err, &ce) {
					t.Errorf("RegisterAll() error type = %T, want *CollisionError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegisterAll() unexpected error: %v", err)
			}
			d, ok := reg.Find(tt.token)
			if !ok || d.Name() != tt.wantOwner {
				t.Errorf("Find(%q) = %v, %v; want %s", tt.token, d, ok, tt.wantOwner)
			}
		})
	}
}

func TestRegisterAll_InvalidDefinition(t *testing.T) {
	bad := func() command.Spec {
		return command.Spec{
			Name:   "bad",
			Params: []command.Param{command.Variadic("a", convert.String), command.Required("b", convert.String)},
			Run:    func(command.Args) error { return nil },
		}
	}
	_, err := RegisterAll(Options{Logger: quietLogger()}, provide("ok"), bad)
	if !errors.Is(err, command.ErrInvalidDefinition) {
		t.Errorf("RegisterAll() error = %v, want ErrInvalidDefinition", err)
	}
}

func TestRegisterAll_Overlay(t *testing.T) {
	base := []string{"quit"}
	exitProvider := func() command.Spec {
		return command.Spec{Name: "exit", Aliases: base, Run: func(command.Args) error { return nil }}
	}
	reg, err := RegisterAll(Options{
		Logger: quietLogger(),
		Overlay: []alias.Alias{
			{Command: "exit", Name: "q"},
			{Command: "exit", Name: "quit"},   // already declared
			{Command: "missing", Name: "zzz"}, // unknown target
		},
	}, exitProvider)
	if err != nil {
		t.Fatalf("RegisterAll() unexpected error: %v", err)
	}

	if d, ok := reg.Find("q"); !ok || d.Name() != "exit" {
		t.Errorf("Find(q) = %v, %v; want exit", d, ok)
	}
	if _, ok := reg.Find("zzz"); ok {
		t.Error("Find(zzz) found a command for an overlay with unknown target")
	}
	if !reflect.DeepEqual(base, []string{"quit"}) {
		t.Errorf("provider aliases mutated: %v", base)
	}
}

func TestRegistry_RegisterAfterFreeze(t *testing.T) {
	reg := New(RejectDuplicates, quietLogger())
	if reg.State() != StateBuilding {
		t.Fatalf("State() = %s, want building", reg.State())
	}
	reg.Freeze()
	reg.Freeze()

	d, err := command.Build(command.Spec{Name: "late", Run: func(command.Args) error { return nil }}, convert.NewBuiltinTable())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if err := reg.Register(d); !errors.Is(err, ErrFrozen) {
		t.Errorf("Register() after Freeze = %v, want ErrFrozen", err)
	}
	if _, ok := reg.Find("late"); ok {
		t.Error("command registered after freeze is visible")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DuplicatePolicy
		wantErr bool
	}{
		{"", RejectDuplicates, false},
		{"reject", RejectDuplicates, false},
		{" First-Wins ", FirstWins, false},
		{"last-wins", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
