// Package errors provides error handling conventions for tagwm.
//
// It re-exports the constructors of [github.com/cockroachdb/errors] so the
// rest of the module has a single import for wrapping, defines the
// sentinel errors for every fatal configuration condition, and carries
// the [ExitError] type used by the CLI to choose a process exit code.
//
// # Sentinel Errors
//
// Fatal compile conditions wrap one of the sentinels so callers can test
// for them with [Is]:
//
//	rt, err := wmconfig.Compile(ctx, opts)
//	if errors.Is(err, errors.ErrNoTags) {
//	    // the selected screen section declares no tags
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): compilation succeeded
//   - ExitUser (1): the configuration document cannot be used
//   - ExitSystem (2): the display server refused a resource
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
