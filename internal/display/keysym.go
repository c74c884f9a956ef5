package display

import "github.com/thoreinstein/tagwm/internal/symbol"

// namedKeysyms covers the X keysym names commonly bound in configurations.
// Single printable Latin-1 characters resolve to their code point.
var namedKeysyms = map[string]symbol.Keysym{
	"space":        0x0020,
	"exclam":       0x0021,
	"quotedbl":     0x0022,
	"numbersign":   0x0023,
	"dollar":       0x0024,
	"percent":      0x0025,
	"ampersand":    0x0026,
	"apostrophe":   0x0027,
	"parenleft":    0x0028,
	"parenright":   0x0029,
	"asterisk":     0x002a,
	"plus":         0x002b,
	"comma":        0x002c,
	"minus":        0x002d,
	"period":       0x002e,
	"slash":        0x002f,
	"colon":        0x003a,
	"semicolon":    0x003b,
	"less":         0x003c,
	"equal":        0x003d,
	"greater":      0x003e,
	"question":     0x003f,
	"at":           0x0040,
	"bracketleft":  0x005b,
	"backslash":    0x005c,
	"bracketright": 0x005d,
	"grave":        0x0060,
	"BackSpace":    0xff08,
	"Tab":          0xff09,
	"Return":       0xff0d,
	"Pause":        0xff13,
	"Scroll_Lock":  0xff14,
	"Escape":       0xff1b,
	"Home":         0xff50,
	"Left":         0xff51,
	"Up":           0xff52,
	"Right":        0xff53,
	"Down":         0xff54,
	"Prior":        0xff55,
	"Page_Up":      0xff55,
	"Next":         0xff56,
	"Page_Down":    0xff56,
	"End":          0xff57,
	"Print":        0xff61,
	"Insert":       0xff63,
	"Menu":         0xff67,
	"Num_Lock":     0xff7f,
	"F1":           0xffbe,
	"F2":           0xffbf,
	"F3":           0xffc0,
	"F4":           0xffc1,
	"F5":           0xffc2,
	"F6":           0xffc3,
	"F7":           0xffc4,
	"F8":           0xffc5,
	"F9":           0xffc6,
	"F10":          0xffc7,
	"F11":          0xffc8,
	"F12":          0xffc9,
	"Shift_L":      0xffe1,
	"Shift_R":      0xffe2,
	"Control_L":    0xffe3,
	"Control_R":    0xffe4,
	"Caps_Lock":    0xffe5,
	"Alt_L":        0xffe9,
	"Alt_R":        0xffea,
	"Super_L":      0xffeb,
	"Super_R":      0xffec,
	"Delete":       0xffff,
}

// LookupKeysym resolves a keysym name without a display connection.
func LookupKeysym(name string) symbol.Keysym {
	if ks, ok := namedKeysyms[name]; ok {
		return ks
	}
	if r := []rune(name); len(r) == 1 && r[0] >= 0x20 && r[0] <= 0xff && r[0] != 0x7f {
		return symbol.Keysym(r[0])
	}
	return symbol.NoSymbol
}
