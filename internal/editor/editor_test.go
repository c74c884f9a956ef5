package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/thoreinstein/tagwm/internal/errors"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{"EDITOR wins", map[string]string{"EDITOR": "nvim", "VISUAL": "code"}, []string{"nvim"}},
		{"VISUAL when EDITOR unset", map[string]string{"VISUAL": "code"}, []string{"code"}},
		{"blank EDITOR falls through", map[string]string{"EDITOR": "  ", "VISUAL": "vscode"}, []string{"vscode"}},
		{"arguments are split", map[string]string{"EDITOR": "code --wait"}, []string{"code", "--wait"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Command(envOf(tt.env))
			if err != nil {
				t.Fatalf("Command() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_Fallback(t *testing.T) {
	got, err := Command(envOf(nil))

	switch {
	case lookPathOK("nano"):
		if err != nil || !slices.Equal(got, []string{"nano"}) {
			t.Errorf("Command() = %q, %v; want nano", got, err)
		}
	case lookPathOK("vi"):
		if err != nil || !slices.Equal(got, []string{"vi"}) {
			t.Errorf("Command() = %q, %v; want vi", got, err)
		}
	default:
		if !errors.Is(err, ErrNoEditor) {
			t.Errorf("Command() error = %v, want ErrNoEditor", err)
		}
	}
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho edited > \"$1\"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "rc.toml")

	orig := lookupEnv
	t.Cleanup(func() { lookupEnv = orig })
	lookupEnv = envOf(map[string]string{"EDITOR": script})

	var out bytes.Buffer
	if err := Open(t.Context(), target, Streams{Out: &out, Err: &out}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "edited\n" {
		t.Errorf("editor did not run on target, got %q", data)
	}
}

func TestOpen_EditorFails(t *testing.T) {
	orig := lookupEnv
	t.Cleanup(func() { lookupEnv = orig })
	lookupEnv = envOf(map[string]string{"EDITOR": filepath.Join(t.TempDir(), "missing")})

	if err := Open(t.Context(), "x", Streams{}); err == nil {
		t.Error("expected error for missing editor binary")
	}
}

func lookPathOK(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
