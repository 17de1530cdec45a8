package aliasoverlay

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	return path
}

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("aliases.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected error")
	}
}

func TestYAMLProvider_GetAliasOverlays(t *testing.T) {
	tests := []struct {
		name                string
		content             *string
		wantAliases         []alias.Alias
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "file does not exist",
			content:     nil,
			wantAliases: []alias.Alias{},
		},
		{
			name:        "empty file",
			content:     ptr(""),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "only comments",
			content:     ptr("# nothing here\n"),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "empty list",
			content:     ptr("[]"),
			wantAliases: []alias.Alias{},
		},
		{
			name:    "valid aliases",
			content: ptr("- command: ls\n  alias: dir\n- command: exit\n  alias: q\n"),
			wantAliases: []alias.Alias{
				{Command: "ls", Name: "dir"},
				{Command: "exit", Name: "q"},
			},
		},
		{
			name:                "unknown field",
			content:             ptr("- command: ls\n  alias: dir\n  description: nope\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "field description not found",
		},
		{
			name:                "missing alias",
			content:             ptr("- command: ls\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "both 'command' and 'alias' are required",
		},
		{
			name:                "not a list",
			content:             ptr("command: ls alias: dir"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal aliases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != nil {
				path = writeFile(t, *tt.content)
			}
			provider, _ := NewYAMLProvider(path)

			got, err := provider.GetAliasOverlays()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetAliasOverlays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetAliasOverlays() error = %q, want it to contain %q", err, tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.wantAliases) {
				t.Errorf("GetAliasOverlays() = %v, want %v", got, tt.wantAliases)
			}
		})
	}
}

func TestYAMLProvider_AddAliasOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "aliases.yaml")
	provider, _ := NewYAMLProvider(path)

	added, err := provider.AddAliasOverlay(alias.Alias{Command: "ls", Name: "l"})
	if err != nil || !added {
		t.Fatalf("AddAliasOverlay() = %v, %v; want true, nil", added, err)
	}
	added, err = provider.AddAliasOverlay(alias.Alias{Command: "pwd", Name: "l"})
	if err != nil || added {
		t.Fatalf("AddAliasOverlay(duplicate) = %v, %v; want false, nil", added, err)
	}
	added, err = provider.AddAliasOverlay(alias.Alias{Command: "exit", Name: "q"})
	if err != nil || !added {
		t.Fatalf("AddAliasOverlay() = %v, %v; want true, nil", added, err)
	}

	got, err := provider.GetAliasOverlays()
	if err != nil {
		t.Fatalf("GetAliasOverlays() unexpected error: %v", err)
	}
	want := []alias.Alias{{Command: "ls", Name: "l"}, {Command: "exit", Name: "q"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetAliasOverlays() = %v, want %v", got, want)
	}
}

func TestDefaultAliases(t *testing.T) {
	got, err := DefaultAliases()
	if err != nil {
		t.Fatalf("DefaultAliases() unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("DefaultAliases() returned no entries")
	}
	if got[0] != (alias.Alias{Command: "ls", Name: "dir"}) {
		t.Errorf("DefaultAliases()[0] = %v, want ls -> dir", got[0])
	}
}

func ptr(s string) *string { return &s }
