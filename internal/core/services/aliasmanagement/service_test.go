package aliasmanagement

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/AntonioJCosta/minish/internal/core/testutil"
)

func testRegistry(t *testing.T) *testutil.MockCommandRegistry {
	t.Helper()
	table := convert.NewBuiltinTable()
	var ds []*command.Descriptor
	for _, spec := range []command.Spec{
		{Name: "ls", Run: func(command.Args) error { return nil }},
		{Name: "exit", Aliases: []string{"quit"}, Run: func(command.Args) error { return nil }},
	} {
		d, err := command.Build(spec, table)
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		ds = append(ds, d)
	}
	return testutil.NewStaticRegistry(ds...)
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if dependencies are set", func(t *testing.T) {
		if svc := NewService(&testutil.MockAliasOverlayProvider{}, &testutil.MockCommandRegistry{}); svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if overlay is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil overlay")
			}
		}()
		_ = NewService(nil, &testutil.MockCommandRegistry{})
	})

	t.Run("should panic if registry is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil registry")
			}
		}()
		_ = NewService(&testutil.MockAliasOverlayProvider{}, nil)
	})
}

func TestService_AddAlias(t *testing.T) {
	overlayErr := errors.New("disk full")

	tests := []struct {
		name        string
		aliasName   string
		commandName string
		setupMock   func(m *testutil.MockAliasOverlayProvider)
		wantAdded   bool
		wantStored  *alias.Alias
		wantErr     error
	}{
		{
			name:        "success - alias newly added",
			aliasName:   "l",
			commandName: "ls",
			wantAdded:   true,
			wantStored:  &alias.Alias{Name: "l", Command: "ls"},
		},
		{
			name:        "success - alias of an alias targets the canonical name",
			aliasName:   "q",
			commandName: "quit",
			wantAdded:   true,
			wantStored:  &alias.Alias{Name: "q", Command: "exit"},
		},
		{
			name:        "success - overlay already has the name",
			aliasName:   "l",
			commandName: "ls",
			setupMock: func(m *testutil.MockAliasOverlayProvider) {
				m.AddAliasOverlayFunc = func(alias.Alias) (bool, error) { return false, nil }
			},
			wantAdded: false,
		},
		{
			name:        "failure - invalid characters",
			aliasName:   "l l",
			commandName: "ls",
			wantErr:     ErrInvalidAliasName,
		},
		{
			name:        "failure - name is a command",
			aliasName:   "exit",
			commandName: "ls",
			wantErr:     ErrAliasInUse,
		},
		{
			name:        "failure - name is an alias",
			aliasName:   "quit",
			commandName: "ls",
			wantErr:     ErrAliasInUse,
		},
		{
			name:        "failure - unknown command",
			aliasName:   "g",
			commandName: "git",
			wantErr:     command.ErrCommandNotFound,
		},
		{
			name:        "failure - overlay returns error",
			aliasName:   "l",
			commandName: "ls",
			setupMock: func(m *testutil.MockAliasOverlayProvider) {
				m.AddAliasOverlayFunc = func(alias.Alias) (bool, error) { return false, overlayErr }
			},
			wantErr: overlayErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *alias.Alias
			mock := &testutil.MockAliasOverlayProvider{
				AddAliasOverlayFunc: func(a alias.Alias) (bool, error) {
					stored = &a
					return true, nil
				},
			}
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}
			svc := NewService(mock, testRegistry(t))

			gotAdded, err := svc.AddAlias(tt.aliasName, tt.commandName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddAlias() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddAlias() unexpected error: %v", err)
			}
			if gotAdded != tt.wantAdded {
				t.Errorf("AddAlias() gotAdded = %v, want %v", gotAdded, tt.wantAdded)
			}
			if tt.wantStored != nil && (stored == nil || *stored != *tt.wantStored) {
				t.Errorf("stored alias = %v, want %v", stored, tt.wantStored)
			}
		})
	}
}

func TestService_ListAliases(t *testing.T) {
	expected := []alias.Alias{{Name: "dir", Command: "ls"}, {Name: "q", Command: "exit"}}
	overlayErr := errors.New("overlay error")

	tests := []struct {
		name                string
		setupMock           func(m *testutil.MockAliasOverlayProvider)
		expectedResult      []alias.Alias
		expectedErrorString string
	}{
		{
			name: "success",
			setupMock: func(m *testutil.MockAliasOverlayProvider) {
				m.GetAliasOverlaysFunc = func() ([]alias.Alias, error) { return expected, nil }
			},
			expectedResult: expected,
		},
		{
			name: "failure - overlay returns error",
			setupMock: func(m *testutil.MockAliasOverlayProvider) {
				m.GetAliasOverlaysFunc = func() ([]alias.Alias, error) { return nil, overlayErr }
			},
			expectedErrorString: fmt.Sprintf("failed to list existing aliases: %s", overlayErr.Error()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &testutil.MockAliasOverlayProvider{}
			tt.setupMock(mock)
			svc := NewService(mock, &testutil.MockCommandRegistry{})

			aliases, err := svc.ListAliases()
			if tt.expectedErrorString != "" {
				if err == nil || err.Error() != tt.expectedErrorString {
					t.Errorf("ListAliases() error = %v, want %q", err, tt.expectedErrorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListAliases() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(aliases, tt.expectedResult) {
				t.Errorf("ListAliases() = %v, want %v", aliases, tt.expectedResult)
			}
		})
	}
}
