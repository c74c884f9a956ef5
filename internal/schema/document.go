package schema

// Section and field names referenced by the compiler.
const (
	SecScreen    = "screen"
	SecGeneral   = "general"
	SecColors    = "colors"
	SecStatusbar = "statusbar"
	SecTags      = "tags"
	SecTag       = "tag"
	SecLayouts   = "layouts"
	SecLayout    = "layout"
	SecPadding   = "padding"
	SecRules     = "rules"
	SecRule      = "rule"
	SecKeys      = "keys"
	SecKey       = "key"
	SecMouse     = "mouse"
)

// Mouse binding sections, in the order they are compiled.
const (
	MouseTag    = "tag"
	MouseLayout = "layout"
	MouseTitle  = "title"
	MouseRoot   = "root"
	MouseClient = "client"
)

var (
	general = Section(SecGeneral, 0,
		Int("border", 1),
		Int("snap", 8),
		Bool("resize_hints", false),
		Int("opacity_unfocused", 100),
		Bool("focus_move_pointer", false),
		Bool("allow_lower_floats", false),
		String("font", "mono-12"),
	)

	colors = Section(SecColors, 0,
		String("normal_border", "#111111"),
		String("normal_bg", "#111111"),
		String("normal_fg", "#eeeeee"),
		String("focus_border", "#6666ff"),
		String("focus_bg", "#6666ff"),
		String("focus_fg", "#ffffff"),
		String("tab_border", "#ff0000"),
	)

	statusbar = Section(SecStatusbar, 0,
		String("position", "top"),
	)

	tags = Section(SecTags, 0,
		Section(SecTag, Titled|Multi,
			String("layout", "tile"),
			Float("mwfact", 0.5),
			Int("nmaster", 1),
			Int("ncol", 1),
		),
	)

	layouts = Section(SecLayouts, 0,
		Section(SecLayout, Titled|Multi,
			String("symbol", "???"),
		),
	)

	padding = Section(SecPadding, 0,
		Int("top", 0),
		Int("bottom", 0),
		Int("right", 0),
		Int("left", 0),
	)

	screen = Section(SecScreen, Titled|Multi,
		general, statusbar, tags, colors, layouts, padding,
	)

	rules = Section(SecRules, 0,
		Section(SecRule, Multi,
			String("name", ""),
			String("tags", ""),
			Bool("float", false),
			Int("screen", RuleNoScreen),
		),
	)

	keys = Section(SecKeys, 0,
		Section(SecKey, Multi,
			StringList("modkey", "Mod4"),
			String("key", "None"),
			String("command", ""),
			NullString("arg"),
		),
	)

	// Tag bindings accept arg so documents that set one still parse; the
	// compiler drops it.
	mouseBinding = []Option{
		StringList("modkey"),
		String("button", "None"),
		String("command", ""),
		NullString("arg"),
	}

	mouse = Section(SecMouse, 0,
		Section(MouseTag, Multi, mouseBinding...),
		Section(MouseLayout, Multi, mouseBinding...),
		Section(MouseTitle, Multi, mouseBinding...),
		Section(MouseRoot, Multi, mouseBinding...),
		Section(MouseClient, Multi, mouseBinding...),
	)
)

// Root returns the descriptor of the whole document.
func Root() Option {
	return Section("", 0, screen, rules, keys, mouse)
}
