// Package schema declares the structure of the tagwm configuration
// document: every section, its fields, their types and defaults, and
// whether a section may repeat or carry a title. The document parser is
// driven entirely by these descriptors.
package schema

import "slices"

// Kind is the value type of an option.
type Kind int

// Option kinds.
const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindStringList
	KindSection
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindStringList:
		return "string list"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// Flag modifies how a section option may appear.
type Flag uint8

const (
	// Multi allows the section to repeat; order of appearance is kept.
	Multi Flag = 1 << iota
	// Titled sections carry a title that identifies them.
	Titled
)

// TitleKey is the reserved key holding a titled section's title.
const TitleKey = "title"

// RuleNoScreen is the rule screen default meaning "the window's own screen".
const RuleNoScreen = -1

// Option describes one field or nested section.
type Option struct {
	Name string
	Kind Kind
	// Default is int, float64, bool, string or []string according to Kind.
	// A nil Default on a string option means the value is absent unless set.
	Default any
	Flags   Flag
	Options []Option
}

// Is reports whether all bits of f are set on o.
func (o Option) Is(f Flag) bool {
	return o.Flags&f == f
}

// Lookup returns the child option called name.
func (o Option) Lookup(name string) (Option, bool) {
	i := slices.IndexFunc(o.Options, func(c Option) bool { return c.Name == name })
	if i < 0 {
		return Option{}, false
	}
	return o.Options[i], true
}

// Int declares an integer option.
func Int(name string, def int) Option { return Option{Name: name, Kind: KindInt, Default: def} }

// Float declares a float option.
func Float(name string, def float64) Option { return Option{Name: name, Kind: KindFloat, Default: def} }

// Bool declares a boolean option.
func Bool(name string, def bool) Option { return Option{Name: name, Kind: KindBool, Default: def} }

// String declares a string option.
func String(name, def string) Option { return Option{Name: name, Kind: KindString, Default: def} }

// NullString declares a string option that is absent unless set.
func NullString(name string) Option { return Option{Name: name, Kind: KindString} }

// StringList declares a string list option.
func StringList(name string, def ...string) Option {
	if def == nil {
		def = []string{}
	}
	return Option{Name: name, Kind: KindStringList, Default: def}
}

// Section declares a nested section.
func Section(name string, flags Flag, opts ...Option) Option {
	return Option{Name: name, Kind: KindSection, Flags: flags, Options: opts}
}
