// Package display defines the display-server services the configuration
// compiler depends on, and a headless implementation of them used when no
// display connection is wanted (validation, dumps, tests).
package display

import (
	"github.com/thoreinstein/tagwm/internal/symbol"
)

// Color is an allocated color.
type Color struct {
	// Name is the specification the color was allocated from.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Pixel is the value to draw with on the screen's visual.
	Pixel uint32 `json:"pixel" yaml:"pixel" toml:"pixel"`
	// Red, Green and Blue are 16-bit channel intensities.
	Red   uint16 `json:"red" yaml:"red" toml:"red"`
	Green uint16 `json:"green" yaml:"green" toml:"green"`
	Blue  uint16 `json:"blue" yaml:"blue" toml:"blue"`
}

// Font is an opened font.
type Font struct {
	Spec   string  `json:"spec" yaml:"spec" toml:"spec"`
	Family string  `json:"family" yaml:"family" toml:"family"`
	Size   float64 `json:"size" yaml:"size" toml:"size"`
}

// ModifierMap lists the keycodes bound to each of the eight modifier rows
// (Shift, Lock, Control, Mod1..Mod5).
type ModifierMap [8][]symbol.Keycode

// Service is the display connection as seen by the configuration
// compiler. Calls are synchronous.
type Service interface {
	// ScreenCount returns the number of managed screens.
	ScreenCount() int
	// PhysicalScreen maps a logical screen to the physical screen owning
	// its colormap.
	PhysicalScreen(screen int) int
	// AllocColor allocates a named or #rrggbb color on a physical screen.
	AllocColor(screen int, name string) (Color, error)
	// OpenFont opens a font from a fontconfig-style specification.
	OpenFont(screen int, spec string) (*Font, error)
	// StringToKeysym resolves a key name, returning symbol.NoSymbol if unknown.
	StringToKeysym(name string) symbol.Keysym
	// KeysymToKeycode returns the keycode generating sym, or 0.
	KeysymToKeycode(sym symbol.Keysym) symbol.Keycode
	// ModifierMapping returns the current modifier map.
	ModifierMapping() ModifierMap
}
