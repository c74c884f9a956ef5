// Package paths resolves the filesystem locations tagwm reads and writes.
//
// The configuration document lives at $HOME/.tagwmrc unless a path is
// given explicitly. Process settings and the optional log file follow the
// XDG base directory layout.
package paths
