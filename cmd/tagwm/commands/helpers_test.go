package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"github.com/thoreinstein/tagwm/internal/paths"
)

// minimalDoc is the smallest document that compiles without warnings.
const minimalDoc = `
[[screen]]
  [[screen.layouts.layout]]
  title = "tile"
  [[screen.tags.tag]]
  title = "one"
`

// isolate points HOME and the settings directory at temporary directories
// and resets every flag variable to its default.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(paths.SettingsDirEnv, t.TempDir())
	t.Setenv(paths.StateDirEnv, t.TempDir())
	t.Setenv("TAGWM_DEBUG", "")
	homedir.DisableCache = true

	origNoColor := color.NoColor
	color.NoColor = true

	reset := func() {
		configFlag, settingsFlag, screensFlag = "", "", 0
		verbosity, quiet = 0, false
		logFormat, logFile = "", ""
		checkJSON = false
		dumpFormat = "yaml"
		bindingsInteractive = false
		defaultConfigInstall, defaultConfigForce = false, false
	}
	reset()
	t.Cleanup(func() {
		reset()
		homedir.DisableCache = false
		color.NoColor = origNoColor
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return home
}

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}
