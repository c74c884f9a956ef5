// Package wmconfig compiles a window manager configuration document into
// the immutable runtime state the rest of the window manager consumes.
//
// Compilation is a single pass. The document is loaded (falling back to the
// built-in default when it is missing or malformed), every screen is
// compiled against the display, then the global rule and binding sections
// are compiled once. Problems that can be repaired with a default are
// logged and recorded in the runtime's diagnostics; problems that cannot
// (a screen without layouts or tags, a color or font the display rejects)
// abort compilation with an error wrapping a sentinel from
// internal/errors.
//
// A compiled [Runtime] is never modified. [Holder] publishes the current
// runtime and swaps in a freshly compiled one on reload.
package wmconfig
