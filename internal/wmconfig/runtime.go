package wmconfig

import (
	"github.com/thoreinstein/tagwm/internal/diagnostic"
	"github.com/thoreinstein/tagwm/internal/display"
	"github.com/thoreinstein/tagwm/internal/rules"
	"github.com/thoreinstein/tagwm/internal/symbol"
)

// Runtime is the compiled configuration.
type Runtime struct {
	// ConfigPath is the resolved document path, recorded even when the
	// built-in default replaced the file.
	ConfigPath string    `json:"config_path" yaml:"config_path" toml:"config_path"`
	Screens    []*Screen `json:"screens" yaml:"screens" toml:"screens"`
	// Rules is nil when the document declares no rules.
	Rules *rules.Set `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
	// Keys is nil when the document declares no key bindings.
	Keys    []*Key  `json:"keys,omitempty" yaml:"keys,omitempty" toml:"keys,omitempty"`
	Buttons Buttons `json:"buttons" yaml:"buttons" toml:"buttons"`
	// NumLockMask is the modifier bit Num Lock occupies on the keyboard
	// mapping, 0 if Num Lock is not mapped. Chord matching masks it out.
	NumLockMask symbol.Modifier `json:"numlock_mask" yaml:"numlock_mask" toml:"numlock_mask"`
	// Diagnostics holds the warnings raised while compiling.
	Diagnostics *diagnostic.Result `json:"-" yaml:"-" toml:"-"`
}

// Buttons holds the pointer binding tables. Each is nil when empty.
type Buttons struct {
	Tag    []*Button `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	Layout []*Button `json:"layout,omitempty" yaml:"layout,omitempty" toml:"layout,omitempty"`
	Title  []*Button `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Root   []*Button `json:"root,omitempty" yaml:"root,omitempty" toml:"root,omitempty"`
	Client []*Button `json:"client,omitempty" yaml:"client,omitempty" toml:"client,omitempty"`
}

// Key is a keyboard chord bound to a command.
type Key struct {
	Modifiers symbol.Modifier `json:"modifiers" yaml:"modifiers" toml:"modifiers"`
	// Name is the key name as written in the document.
	Name   string        `json:"name" yaml:"name" toml:"name"`
	Keysym symbol.Keysym `json:"keysym" yaml:"keysym" toml:"keysym"`
	// Command is nil when the command name did not resolve.
	Command *symbol.Command `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`
	Arg     string          `json:"arg,omitempty" yaml:"arg,omitempty" toml:"arg,omitempty"`
}

// Button is a pointer chord bound to a command.
type Button struct {
	Modifiers symbol.Modifier `json:"modifiers" yaml:"modifiers" toml:"modifiers"`
	Button    symbol.Button   `json:"button" yaml:"button" toml:"button"`
	// Command is nil when the command name did not resolve.
	Command *symbol.Command `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`
	Arg     string          `json:"arg,omitempty" yaml:"arg,omitempty" toml:"arg,omitempty"`
}

// Screen is the compiled configuration of one screen.
type Screen struct {
	Index            int  `json:"index" yaml:"index" toml:"index"`
	Border           int  `json:"border" yaml:"border" toml:"border"`
	Snap             int  `json:"snap" yaml:"snap" toml:"snap"`
	ResizeHints      bool `json:"resize_hints" yaml:"resize_hints" toml:"resize_hints"`
	OpacityUnfocused int  `json:"opacity_unfocused" yaml:"opacity_unfocused" toml:"opacity_unfocused"`
	FocusMovePointer bool `json:"focus_move_pointer" yaml:"focus_move_pointer" toml:"focus_move_pointer"`
	AllowLowerFloats bool `json:"allow_lower_floats" yaml:"allow_lower_floats" toml:"allow_lower_floats"`

	Font     *display.Font `json:"font" yaml:"font" toml:"font"`
	Normal   ColorSet      `json:"normal" yaml:"normal" toml:"normal"`
	Selected ColorSet      `json:"selected" yaml:"selected" toml:"selected"`

	StatusBar  StatusBar `json:"statusbar" yaml:"statusbar" toml:"statusbar"`
	StatusText string    `json:"status_text" yaml:"status_text" toml:"status_text"`

	Layouts []*Layout `json:"layouts" yaml:"layouts" toml:"layouts"`
	Tags    []*Tag    `json:"tags" yaml:"tags" toml:"tags"`
	Padding Padding   `json:"padding" yaml:"padding" toml:"padding"`
}

// TagLayout returns the layout tag t is bound to.
func (s *Screen) TagLayout(t *Tag) *Layout {
	if t == nil || t.Layout < 0 || t.Layout >= len(s.Layouts) {
		return nil
	}
	return s.Layouts[t.Layout]
}

// layoutIndex returns the index of the first layout using handle h, or -1.
func (s *Screen) layoutIndex(h *symbol.Layout) int {
	if h == nil {
		return -1
	}
	for i, l := range s.Layouts {
		if l.Handle == h {
			return i
		}
	}
	return -1
}

// firstResolvedLayout returns the index of the first layout with a handle.
// Compiled screens always have one.
func (s *Screen) firstResolvedLayout() int {
	for i, l := range s.Layouts {
		if l.Handle != nil {
			return i
		}
	}
	return 0
}

// ColorSet is the border, background and foreground colors of one window
// state.
type ColorSet struct {
	Border     display.Color `json:"border" yaml:"border" toml:"border"`
	Background display.Color `json:"background" yaml:"background" toml:"background"`
	Foreground display.Color `json:"foreground" yaml:"foreground" toml:"foreground"`
}

// Layout is an arrangement algorithm offered on a screen.
type Layout struct {
	// Name is the layout name as declared.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Symbol is shown in the status bar. Empty for unresolved layouts.
	Symbol string `json:"symbol" yaml:"symbol" toml:"symbol"`
	// Handle is nil when the name matched no known layout.
	Handle *symbol.Layout `json:"handle,omitempty" yaml:"handle,omitempty" toml:"handle,omitempty"`
}

// Tag is a named workspace.
type Tag struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Selected    bool   `json:"selected" yaml:"selected" toml:"selected"`
	WasSelected bool   `json:"was_selected" yaml:"was_selected" toml:"was_selected"`
	// Layout indexes the owning screen's Layouts.
	Layout  int     `json:"layout" yaml:"layout" toml:"layout"`
	MWFact  float64 `json:"mwfact" yaml:"mwfact" toml:"mwfact"`
	NMaster int     `json:"nmaster" yaml:"nmaster" toml:"nmaster"`
	NCol    int     `json:"ncol" yaml:"ncol" toml:"ncol"`
}

// Padding reserves screen space on each edge, in pixels.
type Padding struct {
	Top    int `json:"top" yaml:"top" toml:"top"`
	Bottom int `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   int `json:"left" yaml:"left" toml:"left"`
	Right  int `json:"right" yaml:"right" toml:"right"`
}

// Position is where the status bar is placed.
type Position int

// Status bar positions.
const (
	PositionTop Position = iota
	PositionBottom
	PositionLeft
	PositionRight
	PositionOff
)

var positionNames = [...]string{
	PositionTop:    "top",
	PositionBottom: "bottom",
	PositionLeft:   "left",
	PositionRight:  "right",
	PositionOff:    "off",
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "top"
	}
	return positionNames[p]
}

// MarshalText renders the position by name.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePosition maps a document value to a Position. Only the exact names
// off, bottom, right and left are recognised; anything else is top.
func ParsePosition(s string) Position {
	switch s {
	case "off":
		return PositionOff
	case "bottom":
		return PositionBottom
	case "right":
		return PositionRight
	case "left":
		return PositionLeft
	default:
		return PositionTop
	}
}

// StatusBar holds the configured and the current status bar position.
type StatusBar struct {
	Default Position `json:"default" yaml:"default" toml:"default"`
	// Current starts equal to Default; the window manager changes it when
	// the bar is toggled.
	Current Position `json:"current" yaml:"current" toml:"current"`
}
