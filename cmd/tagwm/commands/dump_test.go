package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const bindingsDoc = minimalDoc + `
[keys]
  [[keys.key]]
  modkey = ["Mod4", "Shift"]
  key = "Return"
  command = "spawn"
  arg = "exec xterm"

[mouse]
  [[mouse.root]]
  button = "3"
  command = "spawn"
  arg = "exec menu"
`

func TestDump_Formats(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"json", json.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, t.TempDir(), "rc.toml", bindingsDoc)

			out, err := execute(t, "dump", "--config", path, "--format", tt.format, "--screens", "2")
			if err != nil {
				t.Fatalf("dump failed: %v", err)
			}

			var got map[string]any
			if err := tt.decode([]byte(out), &got); err != nil {
				t.Fatalf("output does not decode as %s: %v\n%s", tt.format, err, out)
			}
			screens, ok := got["screens"].([]any)
			if !ok || len(screens) != 2 {
				t.Errorf("expected 2 screens, got %#v", got["screens"])
			}
			if _, ok := got["diagnostics"]; ok {
				t.Error("diagnostics should not be dumped")
			}
			if !strings.Contains(out, "exec xterm") {
				t.Errorf("expected key argument in dump, got:\n%s", out)
			}
		})
	}
}

func TestDump_UnknownFormat(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "rc.toml", minimalDoc)

	if _, err := execute(t, "dump", "--config", path, "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
