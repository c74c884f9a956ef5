package document

import (
	"slices"

	"github.com/thoreinstein/tagwm/internal/schema"
)

// Section is one parsed section of a configuration document. Values not
// set in the document read as their schema defaults.
type Section struct {
	opt      schema.Option
	title    string
	hasTitle bool
	values   map[string]any
	children map[string][]*Section
}

func newSection(opt schema.Option) *Section {
	return &Section{
		opt:      opt,
		values:   make(map[string]any),
		children: make(map[string][]*Section),
	}
}

// Name returns the section's schema name.
func (s *Section) Name() string {
	return s.opt.Name
}

// Title returns the section title and whether one was given.
func (s *Section) Title() (string, bool) {
	return s.title, s.hasTitle
}

func (s *Section) value(name string, kind schema.Kind) any {
	if v, ok := s.values[name]; ok {
		return v
	}
	o, ok := s.opt.Lookup(name)
	if !ok || o.Kind != kind {
		return nil
	}
	return o.Default
}

// Int returns an integer field.
func (s *Section) Int(name string) int {
	v, _ := s.value(name, schema.KindInt).(int)
	return v
}

// Float returns a float field.
func (s *Section) Float(name string) float64 {
	v, _ := s.value(name, schema.KindFloat).(float64)
	return v
}

// Bool returns a boolean field.
func (s *Section) Bool(name string) bool {
	v, _ := s.value(name, schema.KindBool).(bool)
	return v
}

// String returns a string field, "" when absent.
func (s *Section) String(name string) string {
	v, _ := s.LookupString(name)
	return v
}

// LookupString returns a string field and whether it has a value. Fields
// declared without a default report false until set.
func (s *Section) LookupString(name string) (string, bool) {
	v, ok := s.value(name, schema.KindString).(string)
	return v, ok
}

// Strings returns a copy of a string list field.
func (s *Section) Strings(name string) []string {
	v, _ := s.value(name, schema.KindStringList).([]string)
	return slices.Clone(v)
}

// Size returns how many instances of the child section name are present.
func (s *Section) Size(name string) int {
	if s == nil {
		return 0
	}
	return len(s.children[name])
}

// Sections returns every instance of child section name in declaration order.
func (s *Section) Sections(name string) []*Section {
	if s == nil {
		return nil
	}
	return slices.Clone(s.children[name])
}

// Sec returns the first instance of child section name. A singleton
// section missing from the document is returned with every field at its
// default; a missing repeatable section yields nil.
func (s *Section) Sec(name string) *Section {
	if s == nil {
		return nil
	}
	if c := s.children[name]; len(c) > 0 {
		return c[0]
	}
	o, ok := s.opt.Lookup(name)
	if !ok || o.Kind != schema.KindSection || o.Is(schema.Multi) {
		return nil
	}
	return newSection(o)
}

// TitledSec returns the first instance of child section name titled title.
func (s *Section) TitledSec(name, title string) *Section {
	if s == nil {
		return nil
	}
	for _, c := range s.children[name] {
		if c.hasTitle && c.title == title {
			return c
		}
	}
	return nil
}

// UntitledSec returns the first instance of child section name without a title.
func (s *Section) UntitledSec(name string) *Section {
	if s == nil {
		return nil
	}
	for _, c := range s.children[name] {
		if !c.hasTitle {
			return c
		}
	}
	return nil
}
