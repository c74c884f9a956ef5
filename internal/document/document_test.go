package document

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
)

const twoScreensTOML = `
[[screen]]
  [screen.general]
  border = 3
  [[screen.tags.tag]]
  title = "www"
  mwfact = 0.6

[[screen]]
title = "1"
  [screen.general]
  font = "terminus-9"
  [[screen.layouts.layout]]
  title = "max"
  symbol = "[M]"
  [[screen.layouts.layout]]
  title = "tile"

[keys]
  [[keys.key]]
  key = "Return"
  command = "spawn"
  arg = "exec xterm"
  [[keys.key]]
  modkey = ["Mod1", "Shift"]
  key = "q"
  command = "quit"
`

const twoScreensYAML = `
screen:
  - general:
      border: 3
    tags:
      tag:
        - title: www
          mwfact: 0.6
  - title: "1"
    general:
      font: terminus-9
    layouts:
      layout:
        - title: max
          symbol: "[M]"
        - title: tile
keys:
  key:
    - key: Return
      command: spawn
      arg: exec xterm
    - modkey: [Mod1, Shift]
      key: q
      command: quit
`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"toml", twoScreensTOML, FormatTOML},
		{"yaml", twoScreensYAML, FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			root := doc.Root()

			if got := root.Size("screen"); got != 2 {
				t.Fatalf("screen count = %d, want 2", got)
			}

			untitled := root.UntitledSec("screen")
			if untitled == nil {
				t.Fatal("expected an untitled screen section")
			}
			if got := untitled.Sec("general").Int("border"); got != 3 {
				t.Errorf("border = %d, want 3", got)
			}
			if got := untitled.Sec("general").Int("snap"); got != 8 {
				t.Errorf("snap = %d, want default 8", got)
			}
			tag := untitled.Sec("tags").Sections("tag")[0]
			if title, _ := tag.Title(); title != "www" {
				t.Errorf("tag title = %q, want www", title)
			}
			if got := tag.Float("mwfact"); got != 0.6 {
				t.Errorf("mwfact = %v, want 0.6", got)
			}
			if got := tag.String("layout"); got != "tile" {
				t.Errorf("layout = %q, want default tile", got)
			}

			one := root.TitledSec("screen", "1")
			if one == nil {
				t.Fatal(`expected screen "1"`)
			}
			if got := one.Sec("general").String("font"); got != "terminus-9" {
				t.Errorf("font = %q", got)
			}
			layouts := one.Sec("layouts").Sections("layout")
			if len(layouts) != 2 {
				t.Fatalf("layouts = %d, want 2", len(layouts))
			}
			if title, _ := layouts[0].Title(); title != "max" {
				t.Errorf("first layout = %q, want max (declaration order)", title)
			}
			if got := layouts[1].String("symbol"); got != "???" {
				t.Errorf("symbol = %q, want default ???", got)
			}

			keys := root.Sec("keys").Sections("key")
			if len(keys) != 2 {
				t.Fatalf("keys = %d, want 2", len(keys))
			}
			if got := keys[0].Strings("modkey"); !reflect.DeepEqual(got, []string{"Mod4"}) {
				t.Errorf("default modkey = %v, want [Mod4]", got)
			}
			if got := keys[1].Strings("modkey"); !reflect.DeepEqual(got, []string{"Mod1", "Shift"}) {
				t.Errorf("modkey = %v", got)
			}
			if arg, ok := keys[0].LookupString("arg"); !ok || arg != "exec xterm" {
				t.Errorf("arg = %q, %v", arg, ok)
			}
			if _, ok := keys[1].LookupString("arg"); ok {
				t.Error("unset arg should be absent")
			}
		})
	}
}

func TestParse_MissingSingletonsReadAsDefaults(t *testing.T) {
	doc, err := Parse(nil, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root := doc.Root()

	if root.Sec("screen") != nil {
		t.Error("missing repeatable section should be nil")
	}
	rules := root.Sec("rules")
	if rules == nil {
		t.Fatal("missing singleton should read as defaults")
	}
	if rules.Size("rule") != 0 {
		t.Errorf("rule count = %d, want 0", rules.Size("rule"))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantKey string
	}{
		{
			name:    "unknown top-level section",
			input:   "[bogus]\nx = 1\n",
			format:  FormatTOML,
			wantKey: "bogus",
		},
		{
			name:    "unknown field",
			input:   "[[screen]]\n[screen.general]\nborders = 2\n",
			format:  FormatTOML,
			wantKey: "screen[0].general.borders",
		},
		{
			name:    "string where int declared",
			input:   "[[screen]]\n[screen.padding]\ntop = \"ten\"\n",
			format:  FormatTOML,
			wantKey: "screen[0].padding.top",
		},
		{
			name:    "non-integral int",
			input:   "screen:\n  - general:\n      snap: 2.5\n",
			format:  FormatYAML,
			wantKey: "screen[0].general.snap",
		},
		{
			name:    "title on untitled section",
			input:   "[rules]\n[[rules.rule]]\ntitle = \"x\"\n",
			format:  FormatTOML,
			wantKey: "rules.rule[0].title",
		},
		{
			name:    "singleton repeated",
			input:   "rules:\n  - rule: []\n  - rule: []\n",
			format:  FormatYAML,
			wantKey: "rules",
		},
		{
			name:    "modkey list of numbers",
			input:   "[keys]\n[[keys.key]]\nmodkey = [1, 2]\n",
			format:  FormatTOML,
			wantKey: "keys.key[0].modkey",
		},
		{
			name:   "syntax error",
			input:  "[[screen]\n",
			format: FormatTOML,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", perr.Key, tt.wantKey)
			}
			if !errors.Is(err, errors.ErrParse) {
				t.Error("ParseError should match ErrParse")
			}
		})
	}
}

func TestParse_MouseTagArgAccepted(t *testing.T) {
	doc, err := Parse([]byte("[mouse]\n[[mouse.tag]]\nbutton = \"1\"\narg = \"x\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := doc.Root().Sec("mouse").Size("tag"); got != 1 {
		t.Errorf("tag bindings = %d, want 1", got)
	}
}

func TestParse_TitleAsInteger(t *testing.T) {
	doc, err := Parse([]byte("screen:\n  - title: 1\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Root().TitledSec("screen", "1") == nil {
		t.Error("integer title should match its decimal string")
	}
}

func TestParseDefault(t *testing.T) {
	doc, err := ParseDefault()
	if err != nil {
		t.Fatalf("ParseDefault() error = %v", err)
	}
	if !doc.Fallback {
		t.Error("default document should be marked as fallback")
	}
	screen := doc.Root().Sec("screen")
	if screen == nil {
		t.Fatal("default document must declare a screen")
	}
	if screen.Sec("layouts").Size("layout") == 0 {
		t.Error("default document must declare layouts")
	}
	if screen.Sec("tags").Size("tag") == 0 {
		t.Error("default document must declare tags")
	}
	if !strings.Contains(string(DefaultText()), "[[screen]]") {
		t.Error("DefaultText() should return the TOML source")
	}
}

func TestDefaultTextFor(t *testing.T) {
	want, err := ParseDefault()
	if err != nil {
		t.Fatal(err)
	}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			text, err := DefaultTextFor(format)
			if err != nil {
				t.Fatalf("DefaultTextFor() error = %v", err)
			}
			got, err := Parse(text, format)
			if err != nil {
				t.Fatalf("rendered default does not parse as %s: %v", format, err)
			}

			if g, w := got.Root().Sec("keys").Size("key"), want.Root().Sec("keys").Size("key"); g != w {
				t.Errorf("keys = %d, want %d", g, w)
			}
			for _, kind := range []string{"tag", "layout", "title", "root", "client"} {
				if g, w := got.Root().Sec("mouse").Size(kind), want.Root().Sec("mouse").Size(kind); g != w {
					t.Errorf("mouse.%s = %d, want %d", kind, g, w)
				}
			}

			gotTags := got.Root().Sec("screen").Sec("tags").Sections("tag")
			wantTags := want.Root().Sec("screen").Sec("tags").Sections("tag")
			if len(gotTags) != len(wantTags) {
				t.Fatalf("tags = %d, want %d", len(gotTags), len(wantTags))
			}
			for i := range wantTags {
				gn, _ := gotTags[i].Title()
				wn, _ := wantTags[i].Title()
				if gn != wn || gotTags[i].Float("mwfact") != wantTags[i].Float("mwfact") {
					t.Errorf("tag %d = %s/%v, want %s/%v", i, gn, gotTags[i].Float("mwfact"), wn, wantTags[i].Float("mwfact"))
				}
			}
		})
	}

	if _, err := DefaultTextFor("ini"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"/home/u/.tagwmrc":  FormatTOML,
		"rc.toml":           FormatTOML,
		"rc.yaml":           FormatYAML,
		"RC.YML":            FormatYAML,
		"/etc/tagwm/rc.ini": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte(twoScreensYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[screen]]\n[screen.general]\nborder = \"wide\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.toml")

	ctx := logging.NewContext(t.Context(), logging.ForTest(t))

	t.Run("file", func(t *testing.T) {
		doc, err := Load(ctx, good, LoadOptions{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if doc.Fallback {
			t.Error("expected the file, got the default")
		}
		if doc.Path != good || doc.Format != FormatYAML {
			t.Errorf("Path = %q Format = %q", doc.Path, doc.Format)
		}
	})

	t.Run("missing falls back", func(t *testing.T) {
		doc, err := Load(ctx, missing, LoadOptions{Strict: true})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !doc.Fallback {
			t.Error("expected default document")
		}
		if doc.Path != missing {
			t.Errorf("Path = %q, want %q recorded", doc.Path, missing)
		}
	})

	t.Run("malformed falls back", func(t *testing.T) {
		doc, err := Load(ctx, bad, LoadOptions{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !doc.Fallback || doc.Path != bad {
			t.Errorf("Fallback = %v Path = %q", doc.Fallback, doc.Path)
		}
	})

	t.Run("malformed strict", func(t *testing.T) {
		_, err := Load(ctx, bad, LoadOptions{Strict: true})
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if perr.Path != bad {
			t.Errorf("ParseError.Path = %q, want %q", perr.Path, bad)
		}
		if perr.Key != "screen[0].general.border" {
			t.Errorf("ParseError.Key = %q", perr.Key)
		}
	})

	t.Run("default path under home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		homedir.DisableCache = true
		t.Cleanup(func() { homedir.DisableCache = false })
		rc := filepath.Join(home, ".tagwmrc")
		if err := os.WriteFile(rc, []byte(twoScreensTOML), 0o600); err != nil {
			t.Fatal(err)
		}
		doc, err := Load(ctx, "", LoadOptions{})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if doc.Path != rc || doc.Fallback {
			t.Errorf("Path = %q Fallback = %v", doc.Path, doc.Fallback)
		}
	})
}
