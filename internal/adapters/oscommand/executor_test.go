package oscommand

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

func TestNewOSExecutableRunner(t *testing.T) {
	r, ok := NewOSExecutableRunner().(*OSExecutableRunner)
	if !ok {
		t.Fatal("NewOSExecutableRunner() did not return a *OSExecutableRunner")
	}
	if r.Stdout != os.Stdout || r.Stderr != os.Stderr || r.Stdin != os.Stdin {
		t.Error("runner does not inherit the standard streams")
	}
}

func TestOSExecutableRunner_Run(t *testing.T) {
	dir := t.TempDir()
	notExecutable := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(notExecutable, []byte("#!/bin/sh\necho hi\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		program    string
		args       []string
		wantErr    error
		wantMsg    string
		wantStdout string
	}{
		{
			name:       "success",
			program:    "sh",
			args:       []string{"-c", "echo hello"},
			wantStdout: "hello\n",
		},
		{
			name:    "non-zero exit",
			program: "sh",
			args:    []string{"-c", "exit 3"},
			wantErr: command.ErrHandlerFailure,
			wantMsg: "Program 'sh' exited with code: '3'",
		},
		{
			name:    "not found",
			program: "minish-definitely-not-a-program",
			wantErr: command.ErrCommandNotFound,
			wantMsg: "command 'minish-definitely-not-a-program' not found",
		},
		{
			name:    "permission denied",
			program: notExecutable,
			wantErr: command.ErrHandlerFailure,
			wantMsg: "Permission denied for '" + notExecutable + "'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			r := &OSExecutableRunner{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr}
			err := r.Run(tt.program, tt.args)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Run() unexpected error: %v", err)
				}
				if stdout.String() != tt.wantStdout {
					t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Run() error message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
