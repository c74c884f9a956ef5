package wmconfig

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thoreinstein/tagwm/cmd"
	"github.com/thoreinstein/tagwm/internal/diagnostic"
	"github.com/thoreinstein/tagwm/internal/display"
	"github.com/thoreinstein/tagwm/internal/document"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
	"github.com/thoreinstein/tagwm/internal/symbol"
)

// Options controls a compilation.
type Options struct {
	// Path is an explicit document path. Empty means $HOME/.tagwmrc.
	Path string
	// Display resolves colors, fonts and key symbols. Required.
	Display display.Service
	// Strict fails on a malformed document instead of falling back to the
	// built-in default.
	Strict bool
	// Logger receives warnings. Defaults to the logger in the context.
	Logger *slog.Logger
	// StatusText is the initial status bar text of every screen. Defaults
	// to DefaultStatusText().
	StatusText string
}

// DefaultStatusText returns "tagwm-<version> (<release>)" for this build.
func DefaultStatusText() string {
	return fmt.Sprintf("tagwm-%s (%s)", cmd.Version, cmd.Release)
}

// FatalError reports a condition that prevented a runtime from being
// built, together with everything diagnosed up to that point.
type FatalError struct {
	Err         error
	Diagnostics *diagnostic.Result
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// compiler carries the state of one compilation pass.
type compiler struct {
	ctx        context.Context
	logger     *slog.Logger
	display    display.Service
	diags      *diagnostic.Result
	statusText string
	screens    int

	// defaultDoc is parsed at most once per pass.
	defaultDoc *document.Document
}

// Compile loads the configuration document and compiles it into a Runtime.
//
// Errors are *errors.ExitError values wrapping a *FatalError; use
// errors.Is with the sentinels in internal/errors to tell them apart.
func Compile(ctx context.Context, opts Options) (*Runtime, error) {
	if opts.Display == nil {
		return nil, errors.New("wmconfig: no display service")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	ctx = logging.NewContext(ctx, logger)

	c := &compiler{
		ctx:        ctx,
		logger:     logger,
		display:    opts.Display,
		diags:      &diagnostic.Result{},
		statusText: opts.StatusText,
	}
	if c.statusText == "" {
		c.statusText = DefaultStatusText()
	}

	doc, err := document.Load(ctx, opts.Path, document.LoadOptions{Strict: opts.Strict})
	if err != nil {
		if errors.Is(err, errors.ErrParse) {
			c.diags.AddFatal("", err.Error(), nil)
			return nil, c.userError(err)
		}
		return nil, c.systemError(err, "The built-in configuration could not be parsed; this is a bug")
	}
	if doc.Fallback {
		c.diags.AddWarning("", "configuration file unusable, using built-in default", doc.Path)
	}

	rt := &Runtime{
		ConfigPath:  doc.Path,
		Diagnostics: c.diags,
	}

	c.screens = c.display.ScreenCount()
	if c.screens < 1 {
		c.diags.AddFatal("", "display reports no screens", c.screens)
		return nil, c.systemError(errors.ErrNoScreens, "Check the DISPLAY the window manager connects to")
	}

	root := doc.Root()
	rt.Screens = make([]*Screen, 0, c.screens)
	for i := 0; i < c.screens; i++ {
		sec, err := c.screenSection(root, i)
		if err != nil {
			return nil, c.systemError(err, "The built-in configuration could not be parsed; this is a bug")
		}
		s, err := c.compileScreen(sec, i)
		if err != nil {
			return nil, err
		}
		rt.Screens = append(rt.Screens, s)
	}

	rt.Rules = c.compileRules(root)
	rt.Buttons = c.compileAllButtons(root)
	rt.Keys = c.compileKeys(root)
	rt.NumLockMask = c.numLockMask()

	logger.Debug("compiled configuration",
		"path", rt.ConfigPath,
		"screens", len(rt.Screens),
		"rules", rt.Rules.Len(),
		"keys", len(rt.Keys),
		"warnings", len(c.diags.Warnings()),
	)
	return rt, nil
}

// warn logs a recoverable problem and records it.
func (c *compiler) warn(section, message string, value any, hint string) {
	i := c.diags.AddWarning(section, message, value)
	i.Hint = hint

	attrs := []any{"section", section}
	if value != nil {
		attrs = append(attrs, "value", value)
	}
	if hint != "" {
		attrs = append(attrs, "hint", hint)
	}
	c.logger.Warn(message, attrs...)
}

// fatal records a fatal issue and returns err unchanged.
func (c *compiler) fatal(section string, err error, value any) error {
	c.diags.AddFatal(section, err.Error(), value)
	c.logger.Error("configuration unusable", "section", section, "error", err)
	return err
}

func (c *compiler) userError(err error) error {
	return errors.NewConfigError(&FatalError{Err: err, Diagnostics: c.diags})
}

func (c *compiler) systemError(err error, suggestion string) error {
	return errors.NewSystemError(&FatalError{Err: err, Diagnostics: c.diags}, suggestion)
}

// defaults returns the built-in default document, parsing it on first use.
func (c *compiler) defaults() (*document.Document, error) {
	if c.defaultDoc == nil {
		doc, err := document.ParseDefault()
		if err != nil {
			return nil, err
		}
		c.defaultDoc = doc
	}
	return c.defaultDoc, nil
}

func hintFor(name string, candidates []string) string {
	if s := symbol.Suggest(name, candidates); s != "" {
		return fmt.Sprintf("did you mean %q?", s)
	}
	return ""
}
