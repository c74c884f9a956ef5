// Package commands implements the CLI commands for tagwm.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/tagwm/cmd"
	"github.com/thoreinstein/tagwm/internal/display"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/internal/settings"
	"github.com/thoreinstein/tagwm/internal/wmconfig"
)

// configFlag holds the value of the --config flag.
var configFlag string

// settingsFlag holds the value of the --settings flag.
var settingsFlag string

// screensFlag holds the value of the --screens flag.
var screensFlag int

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// current holds the settings loaded at startup.
var current *settings.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"configuration document (default: settings config_path, then ~/.tagwmrc)")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "",
		"settings file (default: $XDG_CONFIG_HOME/tagwm/settings.yaml)")
	rootCmd.PersistentFlags().IntVar(&screensFlag, "screens", 0,
		"number of screens to compile for (default: settings screens)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default: settings log_format)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = paths.DefaultLogFile()

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("tagwm version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	current, settingsLoadErr = settings.Load(settingsFlag)
}

var rootCmd = &cobra.Command{
	Use:   "tagwm",
	Short: "Configuration compiler for the tagwm window manager",
	Long: `tagwm compiles the window manager configuration document
(~/.tagwmrc by default) into the runtime state the window manager runs
with: per-screen appearance, tags and layouts, window placement rules,
and keyboard and pointer bindings.

Documents are TOML, or YAML when the file name ends in .yaml or .yml.
A missing or malformed document falls back to the built-in default;
use 'tagwm check' to see every problem found.`,
	Example: `  # Check the configuration document
  tagwm check

  # Check a document for a two-screen setup
  tagwm check --config ~/wm/rc.toml --screens 2

  # Show the compiled key and mouse bindings
  tagwm bindings

  # Start from the built-in default
  tagwm default-config --install

  See Also: tagwm check, tagwm dump`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("TAGWM_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logFormat
	if format == "" && current != nil {
		format = current.LogFormat
	}
	switch logging.Format(format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", format), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{logging.NewSlogHandler(logging.Config{
		Level:  level,
		Format: logging.Format(format),
		Output: cmd.ErrOrStderr(),
	})}

	file := logFile
	if file == "" && current != nil {
		file = current.LogFile
	}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
			return errors.NewUserError(err, "failed to create log directory")
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewFanout(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings reports a settings file that could not be loaded.
func checkSettings(cmd *cobra.Command) error {
	// Skip for commands that do not read the configuration
	switch cmd.Name() {
	case "help", "version", "gen-doc":
		return nil
	}

	if settingsLoadErr != nil {
		return errors.NewUserError(settingsLoadErr, "Fix or remove "+filepath.Join(paths.SettingsDir(), settings.FileName+".yaml"))
	}
	return nil
}

// compileOptions builds the options shared by every command that compiles
// the configuration against the headless display.
func compileOptions(ctx context.Context, strict bool) wmconfig.Options {
	path := configFlag
	screens := screensFlag
	if current != nil {
		if path == "" {
			path = current.ConfigPath
		}
		if screens <= 0 {
			screens = current.Screens
		}
		strict = strict || current.Strict
	}

	return wmconfig.Options{
		Path:    path,
		Display: display.NewHeadless(screens),
		Strict:  strict,
		Logger:  logging.FromContext(ctx),
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
