package wmconfig

import (
	"fmt"
	"strconv"

	"github.com/thoreinstein/tagwm/internal/display"
	"github.com/thoreinstein/tagwm/internal/document"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/schema"
	"github.com/thoreinstein/tagwm/internal/symbol"
)

// screenSection picks the section configuring screen i: the section titled
// with the screen number, else the first untitled one, else the first one.
// A document without screen sections gets the built-in default's.
func (c *compiler) screenSection(root *document.Section, i int) (*document.Section, error) {
	if sec := root.TitledSec(schema.SecScreen, strconv.Itoa(i)); sec != nil {
		return sec, nil
	}
	if sec := root.UntitledSec(schema.SecScreen); sec != nil {
		return sec, nil
	}
	if sec := root.Sec(schema.SecScreen); sec != nil {
		return sec, nil
	}

	c.warn(screenPath(i), "no screen section found, using built-in default", nil, "")
	def, err := c.defaults()
	if err != nil {
		return nil, err
	}
	return def.Root().Sec(schema.SecScreen), nil
}

func screenPath(i int) string {
	return fmt.Sprintf("screen[%d]", i)
}

func (c *compiler) compileScreen(sec *document.Section, i int) (*Screen, error) {
	path := screenPath(i)
	general := sec.Sec(schema.SecGeneral)
	phys := c.display.PhysicalScreen(i)

	s := &Screen{
		Index:            i,
		Border:           general.Int("border"),
		Snap:             general.Int("snap"),
		ResizeHints:      general.Bool("resize_hints"),
		OpacityUnfocused: general.Int("opacity_unfocused"),
		FocusMovePointer: general.Bool("focus_move_pointer"),
		AllowLowerFloats: general.Bool("allow_lower_floats"),
		StatusText:       c.statusText,
	}

	if err := c.compileColors(s, sec.Sec(schema.SecColors), phys, path); err != nil {
		return nil, err
	}

	spec := general.String("font")
	font, err := c.display.OpenFont(phys, spec)
	if err != nil {
		err = errors.Wrapf(errors.ErrFontLoad, "%s: %v", spec, err)
		return nil, c.systemError(c.fatal(path+".general.font", err, spec), "Check the font name with fc-list")
	}
	s.Font = font

	pos := ParsePosition(sec.Sec(schema.SecStatusbar).String("position"))
	s.StatusBar = StatusBar{Default: pos, Current: pos}

	if err := c.compileLayouts(s, sec.Sec(schema.SecLayouts), path); err != nil {
		return nil, err
	}
	if err := c.compileTags(s, sec.Sec(schema.SecTags), path); err != nil {
		return nil, err
	}

	padding := sec.Sec(schema.SecPadding)
	s.Padding = Padding{
		Top:    padding.Int("top"),
		Bottom: padding.Int("bottom"),
		Left:   padding.Int("left"),
		Right:  padding.Int("right"),
	}

	return s, nil
}

func (c *compiler) compileColors(s *Screen, colors *document.Section, phys int, path string) error {
	targets := []struct {
		field string
		dst   *display.Color
	}{
		{"normal_border", &s.Normal.Border},
		{"normal_bg", &s.Normal.Background},
		{"normal_fg", &s.Normal.Foreground},
		{"focus_border", &s.Selected.Border},
		{"focus_bg", &s.Selected.Background},
		{"focus_fg", &s.Selected.Foreground},
	}
	for _, t := range targets {
		name := colors.String(t.field)
		col, err := c.display.AllocColor(phys, name)
		if err != nil {
			err = errors.Wrapf(errors.ErrColorAlloc, "%q: %v", name, err)
			return c.systemError(c.fatal(path+".colors."+t.field, err, name), "Use a #rrggbb value or a name from rgb.txt")
		}
		*t.dst = col
	}
	return nil
}

// compileLayouts keeps one slot per declared layout so indices match the
// document. Unknown names leave a slot without handle or symbol.
func (c *compiler) compileLayouts(s *Screen, layouts *document.Section, path string) error {
	resolved := 0
	for j, sec := range layouts.Sections(schema.SecLayout) {
		name, _ := sec.Title()
		l := &Layout{Name: name}
		if h := symbol.LookupLayout(name); h != nil {
			l.Handle = h
			l.Symbol = sec.String("symbol")
			resolved++
		} else {
			c.warn(fmt.Sprintf("%s.layouts.layout[%d]", path, j), "unknown layout", name,
				hintFor(name, symbol.LayoutNames()))
		}
		s.Layouts = append(s.Layouts, l)
	}

	if resolved == 0 {
		return c.userError(c.fatal(path+".layouts", errors.ErrNoLayouts, nil))
	}
	return nil
}

// compileTags binds each tag to the first screen layout sharing the handle
// its layout name resolves to, or to the first resolved layout.
func (c *compiler) compileTags(s *Screen, tags *document.Section, path string) error {
	for j, sec := range tags.Sections(schema.SecTag) {
		name, _ := sec.Title()
		layoutName := sec.String("layout")

		idx := s.layoutIndex(symbol.LookupLayout(layoutName))
		if idx < 0 {
			c.warn(fmt.Sprintf("%s.tags.tag[%d]", path, j), "layout not available on this screen, using first layout", layoutName, "")
			idx = s.firstResolvedLayout()
		}

		s.Tags = append(s.Tags, &Tag{
			Name:    name,
			Layout:  idx,
			MWFact:  sec.Float("mwfact"),
			NMaster: sec.Int("nmaster"),
			NCol:    sec.Int("ncol"),
		})
	}

	if len(s.Tags) == 0 {
		return c.userError(c.fatal(path+".tags", errors.ErrNoTags, nil))
	}

	s.Tags[0].Selected = true
	s.Tags[0].WasSelected = true
	return nil
}
