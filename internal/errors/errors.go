package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the tagwm process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates the configuration document is unusable.
	ExitUser = 1

	// ExitSystem indicates a display server resource could not be obtained.
	ExitSystem = 2
)

// Sentinel errors for configuration compilation.
var (
	// ErrNotFound indicates the configuration document does not exist.
	ErrNotFound = crdb.New("configuration file not found")

	// ErrParse indicates the document is structurally invalid against the schema.
	ErrParse = crdb.New("malformed configuration")

	// ErrNoLayouts indicates a screen has no usable layout.
	ErrNoLayouts = crdb.New("no default layout available")

	// ErrNoTags indicates a screen declares no tags.
	ErrNoTags = crdb.New("no tags found in configuration")

	// ErrColorAlloc indicates the display server could not allocate a color.
	ErrColorAlloc = crdb.New("cannot allocate color")

	// ErrFontLoad indicates the display server could not open a font.
	ErrFontLoad = crdb.New("cannot init font")

	// ErrNoScreens indicates the display reports zero screens.
	ErrNoScreens = crdb.New("display has no screens")
)

// Re-exported constructors and inspectors from cockroachdb/errors.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Join   = crdb.Join
	Unwrap = crdb.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError for an unusable configuration document.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: tagwm check",
	}
}

// Error returns the error message from the underlying error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err, ExitSuccess for nil and
// ExitUser for any error that is not an ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
