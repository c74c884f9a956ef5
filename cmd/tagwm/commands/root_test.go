package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/internal/settings"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	isolate(t)

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	isolate(t)

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"TAGWM_DEBUG=1", "1", slog.LevelDebug},
		{"TAGWM_DEBUG=true", "true", slog.LevelDebug},
		{"TAGWM_DEBUG=2", "2", logging.LevelTrace},
		{"TAGWM_DEBUG=0", "0", slog.LevelWarn},
		{"TAGWM_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("TAGWM_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Error("expected Trace level to be disabled when TAGWM_DEBUG=1")
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	isolate(t)
	quiet = true
	verbosity = 1

	err := setupLogging(rootCmd)
	if err == nil {
		t.Fatal("expected error for --quiet with --verbose")
	}
	if got := errors.ExitCode(err); got != errors.ExitUser {
		t.Errorf("ExitCode = %d, want %d", got, errors.ExitUser)
	}
}

func TestSetupLogging_InvalidFormat(t *testing.T) {
	isolate(t)
	logFormat = "xml"

	if err := setupLogging(rootCmd); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	isolate(t)
	logFile = filepath.Join(t.TempDir(), "logs", "tagwm.log")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	slog.Info("hello from test")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello from test"`) {
		t.Errorf("log file missing JSON record, got: %s", data)
	}
}

func TestCompileOptions_SettingsFallback(t *testing.T) {
	isolate(t)

	orig := current
	t.Cleanup(func() { current = orig })
	current = &settings.Settings{ConfigPath: "/etc/tagwm/rc.toml", Screens: 3, Strict: true}

	opts := compileOptions(t.Context(), false)
	if opts.Path != "/etc/tagwm/rc.toml" {
		t.Errorf("Path = %q", opts.Path)
	}
	if got := opts.Display.ScreenCount(); got != 3 {
		t.Errorf("ScreenCount = %d, want 3", got)
	}
	if !opts.Strict {
		t.Error("Strict should follow settings")
	}

	configFlag = "./rc.yaml"
	screensFlag = 2
	opts = compileOptions(t.Context(), false)
	if opts.Path != "./rc.yaml" {
		t.Errorf("flag should win, Path = %q", opts.Path)
	}
	if got := opts.Display.ScreenCount(); got != 2 {
		t.Errorf("flag should win, ScreenCount = %d", got)
	}
}

func TestRoot_InvalidSettingsFile(t *testing.T) {
	isolate(t)
	dir := paths.SettingsDir()
	writeFile(t, dir, "settings.yaml", "version: 1\nlog_format: xml\n")

	_, err := execute(t, "check")
	if err == nil {
		t.Fatal("expected invalid settings to fail")
	}
	if !errors.Is(err, settings.ErrInvalid) {
		t.Errorf("expected settings.ErrInvalid, got %v", err)
	}

	// version does not read the configuration
	if _, err := execute(t, "version"); err != nil {
		t.Errorf("version should ignore settings errors, got %v", err)
	}
}
