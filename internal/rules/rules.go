// Package rules holds window-placement rules and their compiled matchers.
//
// A rule pairs a pattern over window properties with effects: the tags the
// window is placed on, whether it floats, and the screen it is sent to.
// Rules keep their declaration order; callers decide between first-match
// and all-matches semantics.
package rules

import (
	"regexp"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// NoScreen is the screen value of a rule that leaves the window on its
// natural screen.
const NoScreen = -1

// Rule is one window-placement rule.
type Rule struct {
	// Name is the pattern matched against window properties.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Tags is the pattern selecting the tags to place the window on.
	// Empty means the rule assigns no tags.
	Tags string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	// Float forces the window floating.
	Float bool `json:"float" yaml:"float" toml:"float"`
	// Screen is the target screen, or NoScreen.
	Screen int `json:"screen" yaml:"screen" toml:"screen"`

	prop *regexp.Regexp
	tags *regexp.Regexp
	err  error
}

// Err reports why the rule's patterns failed to compile. A rule with an
// invalid pattern never matches.
func (r *Rule) Err() error {
	return r.err
}

// Matches reports whether the rule's property pattern matches props.
func (r *Rule) Matches(props string) bool {
	return r.prop != nil && r.prop.MatchString(props)
}

// HasTags reports whether the rule assigns tags.
func (r *Rule) HasTags() bool {
	return r.Tags != ""
}

// TagMatches reports whether the rule places windows on the named tag.
func (r *Rule) TagMatches(tag string) bool {
	return r.tags != nil && r.tags.MatchString(tag)
}

func (r *Rule) compile() {
	var errs []error
	prop, err := regexp.Compile(r.Name)
	if err != nil {
		errs = append(errs, errors.Wrapf(err, "rule %q: name", r.Name))
		prop = nil
	}
	r.prop = prop
	if r.HasTags() {
		tags, err := regexp.Compile(r.Tags)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "rule %q: tags", r.Name))
			tags = nil
		}
		r.tags = tags
	}
	if len(errs) > 0 {
		r.err = errors.Join(errs...)
		r.prop, r.tags = nil, nil
	}
}

// Set is an ordered, precompiled rule chain.
type Set struct {
	Rules []*Rule `json:"rules" yaml:"rules" toml:"rules"`
}

// Compile copies rs in order and precompiles every rule's patterns. It
// returns nil when rs is empty.
func Compile(rs []Rule) *Set {
	if len(rs) == 0 {
		return nil
	}
	s := &Set{Rules: make([]*Rule, len(rs))}
	for i := range rs {
		r := &Rule{
			Name:   rs[i].Name,
			Tags:   rs[i].Tags,
			Float:  rs[i].Float,
			Screen: rs[i].Screen,
		}
		r.compile()
		s.Rules[i] = r
	}
	return s
}

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}

// Errors returns the compile errors of rules with invalid patterns.
func (s *Set) Errors() []error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, r := range s.Rules {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errs
}

// Match returns the rules matching props in declaration order.
func (s *Set) Match(props string) []*Rule {
	if s == nil {
		return nil
	}
	var out []*Rule
	for _, r := range s.Rules {
		if r.Matches(props) {
			out = append(out, r)
		}
	}
	return out
}

// Placement is the combined effect of every rule matching a window.
type Placement struct {
	// Tags holds, per candidate tag, whether a matching rule selects it.
	Tags []bool
	// Tagged is true when at least one tag was selected.
	Tagged bool
	Float  bool
	// Screen is the last explicit screen among matching rules, or NoScreen.
	Screen int
}

// Apply folds every rule matching props into a Placement over the given
// tag names.
func (s *Set) Apply(props string, tagNames []string) Placement {
	p := Placement{Tags: make([]bool, len(tagNames)), Screen: NoScreen}
	for _, r := range s.Match(props) {
		if r.Float {
			p.Float = true
		}
		if r.Screen != NoScreen {
			p.Screen = r.Screen
		}
		for i, name := range tagNames {
			if r.TagMatches(name) {
				p.Tags[i] = true
				p.Tagged = true
			}
		}
	}
	return p
}
