package display

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/symbol"
)

// x11Colors maps the rgb.txt names most often used in configurations.
var x11Colors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"gray":      "#bebebe",
	"grey":      "#bebebe",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"orange":    "#ffa500",
	"purple":    "#a020f0",
	"navy":      "#000080",
	"brown":     "#a52a2a",
	"pink":      "#ffc0cb",
	"gold":      "#ffd700",
}

// Headless implements Service without a display connection. Colors are
// resolved in a 24-bit TrueColor visual, keycodes are assigned from a fixed
// synthetic keymap.
type Headless struct {
	// Screens is the number of logical screens; values below 1 mean 1.
	Screens int
	// Modifiers is returned by ModifierMapping.
	Modifiers ModifierMap

	keycodes map[symbol.Keysym]symbol.Keycode
}

var _ Service = (*Headless)(nil)

// minKeycode is the lowest keycode an X server hands out.
const minKeycode = 8

// NewHeadless returns a headless display with the given screen count and a
// conventional PC modifier map (Num_Lock on Mod2, Super_L on Mod4).
func NewHeadless(screens int) *Headless {
	h := &Headless{Screens: screens}
	h.buildKeymap()
	code := func(name string) symbol.Keycode { return h.keycodes[LookupKeysym(name)] }
	h.Modifiers = ModifierMap{
		{code("Shift_L"), code("Shift_R")},
		{code("Caps_Lock")},
		{code("Control_L"), code("Control_R")},
		{code("Alt_L"), code("Alt_R")},
		{code("Num_Lock")},
		nil,
		{code("Super_L"), code("Super_R")},
		nil,
	}
	return h
}

func (h *Headless) buildKeymap() {
	seen := make(map[symbol.Keysym]bool)
	var syms []symbol.Keysym
	add := func(ks symbol.Keysym) {
		if !seen[ks] {
			seen[ks] = true
			syms = append(syms, ks)
		}
	}
	for r := symbol.Keysym('0'); r <= '9'; r++ {
		add(r)
	}
	for r := symbol.Keysym('a'); r <= 'z'; r++ {
		add(r)
	}
	names := make([]string, 0, len(namedKeysyms))
	for name := range namedKeysyms {
		names = append(names, name)
	}
	// Sorted so keycodes are stable between runs.
	slices.Sort(names)
	for _, name := range names {
		add(namedKeysyms[name])
	}

	h.keycodes = make(map[symbol.Keysym]symbol.Keycode, len(syms))
	for i, ks := range syms {
		if minKeycode+i > 255 {
			break
		}
		h.keycodes[ks] = symbol.Keycode(minKeycode + i)
	}
}

// ScreenCount implements Service.
func (h *Headless) ScreenCount() int {
	if h.Screens < 1 {
		return 1
	}
	return h.Screens
}

// PhysicalScreen implements Service. Every logical screen is its own
// physical screen.
func (h *Headless) PhysicalScreen(screen int) int {
	return screen
}

// AllocColor implements Service.
func (h *Headless) AllocColor(_ int, name string) (Color, error) {
	spec := strings.TrimSpace(name)
	if hex, ok := x11Colors[strings.ToLower(strings.ReplaceAll(spec, " ", ""))]; ok {
		spec = hex
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return Color{}, errors.Wrapf(err, "unknown color %q", name)
	}
	r, g, b := c.RGB255()
	return Color{
		Name:  name,
		Pixel: uint32(r)<<16 | uint32(g)<<8 | uint32(b),
		Red:   uint16(r) * 0x101,
		Green: uint16(g) * 0x101,
		Blue:  uint16(b) * 0x101,
	}, nil
}

// OpenFont implements Service. Specifications take the forms "family",
// "family-size" or "family:size=N".
func (h *Headless) OpenFont(_ int, spec string) (*Font, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return nil, errors.New("empty font specification")
	}
	family, size := s, 12.0
	if i := strings.Index(s, ":size="); i >= 0 {
		family = s[:i]
		v, err := strconv.ParseFloat(s[i+len(":size="):], 64)
		if err != nil || v <= 0 {
			return nil, errors.Newf("invalid font size in %q", spec)
		}
		size = v
	} else if i := strings.LastIndex(s, "-"); i >= 0 {
		if v, err := strconv.ParseFloat(s[i+1:], 64); err == nil {
			if v <= 0 {
				return nil, errors.Newf("invalid font size in %q", spec)
			}
			family, size = s[:i], v
		}
	}
	if family == "" {
		return nil, errors.Newf("missing font family in %q", spec)
	}
	return &Font{Spec: spec, Family: family, Size: size}, nil
}

// StringToKeysym implements Service.
func (h *Headless) StringToKeysym(name string) symbol.Keysym {
	return LookupKeysym(name)
}

// KeysymToKeycode implements Service. Upper-case Latin letters share the
// keycode of their lower-case keysym.
func (h *Headless) KeysymToKeycode(sym symbol.Keysym) symbol.Keycode {
	if h.keycodes == nil {
		h.buildKeymap()
	}
	if sym >= 'A' && sym <= 'Z' {
		sym += 'a' - 'A'
	}
	return h.keycodes[sym]
}

// ModifierMapping implements Service.
func (h *Headless) ModifierMapping() ModifierMap {
	var m ModifierMap
	for i, row := range h.Modifiers {
		m[i] = append([]symbol.Keycode(nil), row...)
	}
	return m
}
