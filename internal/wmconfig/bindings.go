package wmconfig

import (
	"fmt"

	"github.com/thoreinstein/tagwm/internal/document"
	"github.com/thoreinstein/tagwm/internal/logging"
	"github.com/thoreinstein/tagwm/internal/rules"
	"github.com/thoreinstein/tagwm/internal/schema"
	"github.com/thoreinstein/tagwm/internal/symbol"
)

func (c *compiler) compileRules(root *document.Section) *rules.Set {
	entries := root.Sec(schema.SecRules).Sections(schema.SecRule)
	if len(entries) == 0 {
		return nil
	}

	rs := make([]rules.Rule, 0, len(entries))
	for _, sec := range entries {
		screen := sec.Int("screen")
		if screen != rules.NoScreen && (screen < 0 || screen >= c.screens) {
			screen = 0
		}
		rs = append(rs, rules.Rule{
			Name:   sec.String("name"),
			Tags:   sec.String("tags"),
			Float:  sec.Bool("float"),
			Screen: screen,
		})
	}

	set := rules.Compile(rs)
	for j, r := range set.Rules {
		if err := r.Err(); err != nil {
			c.warn(fmt.Sprintf("rules.rule[%d]", j), "invalid pattern, rule never matches", err.Error(), "")
		}
	}
	return set
}

func (c *compiler) compileAllButtons(root *document.Section) Buttons {
	mouse := root.Sec(schema.SecMouse)
	return Buttons{
		Tag:    c.compileButtons(mouse, schema.MouseTag, false),
		Layout: c.compileButtons(mouse, schema.MouseLayout, true),
		Title:  c.compileButtons(mouse, schema.MouseTitle, true),
		Root:   c.compileButtons(mouse, schema.MouseRoot, true),
		Client: c.compileButtons(mouse, schema.MouseClient, true),
	}
}

// compileButtons compiles one pointer binding table. Arguments are kept
// only when hasArg is set.
func (c *compiler) compileButtons(mouse *document.Section, kind string, hasArg bool) []*Button {
	entries := mouse.Sections(kind)
	if len(entries) == 0 {
		return nil
	}

	out := make([]*Button, 0, len(entries))
	for j, sec := range entries {
		path := fmt.Sprintf("mouse.%s[%d]", kind, j)
		b := &Button{
			Modifiers: c.modifiers(sec, path),
			Button:    c.button(sec.String("button"), path),
			Command:   c.command(sec.String("command"), path),
		}
		if hasArg {
			b.Arg = sec.String("arg")
		}
		c.logger.Log(c.ctx, logging.LevelTrace, "compiled button binding",
			"section", path, "modifiers", b.Modifiers, "button", b.Button, "arg", b.Arg)
		out = append(out, b)
	}
	return out
}

func (c *compiler) compileKeys(root *document.Section) []*Key {
	entries := root.Sec(schema.SecKeys).Sections(schema.SecKey)
	if len(entries) == 0 {
		return nil
	}

	out := make([]*Key, 0, len(entries))
	for j, sec := range entries {
		path := fmt.Sprintf("keys.key[%d]", j)
		name := sec.String("key")
		ks := c.display.StringToKeysym(name)
		if ks == symbol.NoSymbol && name != "None" {
			c.warn(path, "unknown key", name, "")
		}
		k := &Key{
			Modifiers: c.modifiers(sec, path),
			Name:      name,
			Keysym:    ks,
			Command:   c.command(sec.String("command"), path),
			Arg:       sec.String("arg"),
		}
		c.logger.Log(c.ctx, logging.LevelTrace, "compiled key binding",
			"section", path, "modifiers", k.Modifiers, "key", name, "keysym", uint32(ks), "arg", k.Arg)
		out = append(out, k)
	}
	return out
}

// modifiers ORs the masks of every modkey name; unknown names add nothing.
func (c *compiler) modifiers(sec *document.Section, path string) symbol.Modifier {
	var mask symbol.Modifier
	for _, name := range sec.Strings("modkey") {
		m := symbol.LookupModifier(name)
		if m == 0 {
			c.warn(path, "unknown modifier", name, "")
		}
		mask |= m
	}
	return mask
}

func (c *compiler) button(name, path string) symbol.Button {
	b := symbol.LookupButton(name)
	if b == symbol.NoButton && name != "None" {
		c.warn(path, "unknown button", name, "")
	}
	return b
}

// command resolves a command name. An unknown name yields a nil handle and
// a warning; the binding is kept.
func (c *compiler) command(name, path string) *symbol.Command {
	cmd := symbol.LookupCommand(name)
	if cmd == nil {
		c.warn(path, "unknown command", name, hintFor(name, symbol.CommandNames()))
	}
	return cmd
}

// numLockMask returns the modifier bit of the row holding the Num_Lock
// keycode. The last matching row wins.
func (c *compiler) numLockMask() symbol.Modifier {
	code := c.display.KeysymToKeycode(symbol.KeysymNumLock)
	if code == 0 {
		return 0
	}

	var mask symbol.Modifier
	for row, codes := range c.display.ModifierMapping() {
		for _, kc := range codes {
			if kc == code {
				mask = symbol.ModifierForRow(row)
			}
		}
	}
	return mask
}
