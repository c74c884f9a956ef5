// Package diagnostic collects the problems found while compiling a window
// manager configuration.
//
// Compilation keeps going past most problems by substituting defaults; each
// substitution is recorded as a warning. Conditions that stop compilation
// are recorded as fatal issues.
//
//	result := &diagnostic.Result{}
//	result.AddWarning("keys.key[3]", "unknown command", "spwan")
//
//	if result.HasFatal() {
//		// compilation failed
//	}
//
// A [Reporter] renders a Result as colored text or JSON.
package diagnostic
