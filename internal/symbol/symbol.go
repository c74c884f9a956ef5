// Package symbol holds the static name tables the configuration compiler
// resolves against: modifier names, pointer buttons, layout algorithms and
// commands. Tables are built once at package initialization and never
// change.
package symbol

import (
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Modifier is an X11 modifier mask.
type Modifier uint16

// Core protocol modifier masks.
const (
	ShiftMask   Modifier = 1 << 0
	LockMask    Modifier = 1 << 1
	ControlMask Modifier = 1 << 2
	Mod1Mask    Modifier = 1 << 3
	Mod2Mask    Modifier = 1 << 4
	Mod3Mask    Modifier = 1 << 5
	Mod4Mask    Modifier = 1 << 6
	Mod5Mask    Modifier = 1 << 7
)

// modifierNames is ordered by bit so String is stable.
var modifierNames = []struct {
	name string
	mask Modifier
}{
	{"Shift", ShiftMask},
	{"Lock", LockMask},
	{"Control", ControlMask},
	{"Mod1", Mod1Mask},
	{"Mod2", Mod2Mask},
	{"Mod3", Mod3Mask},
	{"Mod4", Mod4Mask},
	{"Mod5", Mod5Mask},
}

var modifiers = func() map[string]Modifier {
	m := make(map[string]Modifier, len(modifierNames))
	for _, e := range modifierNames {
		m[e.name] = e.mask
	}
	return m
}()

// LookupModifier returns the mask for a modifier name. Unknown names
// resolve to 0 so they contribute no bits.
func LookupModifier(name string) Modifier {
	return modifiers[name]
}

// ModifierMask ORs together the masks of every name.
func ModifierMask(names []string) Modifier {
	var mask Modifier
	for _, n := range names {
		mask |= LookupModifier(n)
	}
	return mask
}

// ModifierForRow returns the mask of modifier map row i (0..7).
func ModifierForRow(i int) Modifier {
	if i < 0 || i >= len(modifierNames) {
		return 0
	}
	return modifierNames[i].mask
}

// Has reports whether m contains every bit of mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// String renders the mask as names joined by "+", e.g. "Shift+Mod4".
func (m Modifier) String() string {
	var parts []string
	for _, e := range modifierNames {
		if m&e.mask != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "+")
}

// MarshalText renders the mask by name.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Button is a pointer button code. 0 means no button.
type Button uint8

// Pointer buttons.
const (
	NoButton Button = iota
	Button1
	Button2
	Button3
	Button4
	Button5
)

var buttons = map[string]Button{
	"1": Button1,
	"2": Button2,
	"3": Button3,
	"4": Button4,
	"5": Button5,
}

// LookupButton returns the button code for a name. Unknown names,
// including the schema default "None", resolve to NoButton.
func LookupButton(name string) Button {
	return buttons[name]
}

func (b Button) String() string {
	if b == NoButton {
		return "None"
	}
	return "Button" + strconv.Itoa(int(b))
}

// MarshalText renders the button by name.
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Keysym is an X11 key symbol. 0 is NoSymbol.
type Keysym uint32

// NoSymbol is the keysym of an unresolvable key name.
const NoSymbol Keysym = 0

// Keycode is a hardware key code on the current keyboard mapping.
type Keycode uint8

// Layout is the handle of an arrangement algorithm. Handles are compared by
// identity; the algorithm itself is supplied by the layout package.
type Layout struct {
	Name string
}

// Layout handles.
var (
	LayoutTile     = &Layout{Name: "tile"}
	LayoutTileLeft = &Layout{Name: "tileleft"}
	LayoutMax      = &Layout{Name: "max"}
	LayoutFloating = &Layout{Name: "floating"}
)

var layouts = map[string]*Layout{
	LayoutTile.Name:     LayoutTile,
	LayoutTileLeft.Name: LayoutTileLeft,
	LayoutMax.Name:      LayoutMax,
	LayoutFloating.Name: LayoutFloating,
}

// MarshalText renders the handle by name.
func (l *Layout) MarshalText() ([]byte, error) {
	return []byte(l.Name), nil
}

// LookupLayout returns the layout handle for name, or nil.
func LookupLayout(name string) *Layout {
	return layouts[name]
}

// LayoutNames returns the known layout names, sorted.
func LayoutNames() []string {
	return sortedKeys(layouts)
}

// Command is the handle of a user-invokable command. The dispatcher owns
// the behaviour behind each handle.
type Command struct {
	Name string
}

var commands = func() map[string]*Command {
	names := []string{
		"spawn",
		"exec",
		"quit",
		"client_kill",
		"client_moveresize",
		"client_settrans",
		"client_swapnext",
		"client_swapprev",
		"client_focusnext",
		"client_focusprev",
		"client_togglemax",
		"client_toggleverticalmax",
		"client_togglehorizontalmax",
		"client_togglefloating",
		"client_zoom",
		"client_movetoscreen",
		"client_movemouse",
		"client_resizemouse",
		"client_tag",
		"client_toggletag",
		"screen_focus",
		"tag_view",
		"tag_toggleview",
		"tag_viewnext",
		"tag_viewprev",
		"tag_prev_selected",
		"tag_setnmaster",
		"tag_setncol",
		"tag_setmwfact",
		"layout_setlayout",
		"statusbar_toggle",
	}
	m := make(map[string]*Command, len(names))
	for _, n := range names {
		m[n] = &Command{Name: n}
	}
	return m
}()

// MarshalText renders the handle by name.
func (c *Command) MarshalText() ([]byte, error) {
	return []byte(c.Name), nil
}

// LookupCommand returns the command handle for name, or nil.
func LookupCommand(name string) *Command {
	return commands[name]
}

// CommandNames returns the known command names, sorted.
func CommandNames() []string {
	return sortedKeys(commands)
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to name by edit distance, or ""
// when none is within a few edits.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// KeysymNumLock is XK_Num_Lock.
const KeysymNumLock Keysym = 0xff7f
