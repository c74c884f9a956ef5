package document

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/schema"
)

// Format is the concrete syntax of a configuration document.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension; TOML unless the file
// ends in .yaml or .yml.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseError reports a document that does not conform to the schema.
type ParseError struct {
	Path string // file the document came from, if any
	Key  string // dotted option path, e.g. screen[0].general.border
	Err  error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parsing configuration")
	if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}
	if e.Key != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Key)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match errors.ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrParse
}

// Parse decodes data in the given format and validates it against the
// document schema.
func Parse(data []byte, format Format) (*Document, error) {
	raw, err := decode(data, format)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	root, err := build(schema.Root(), raw, "")
	if err != nil {
		return nil, err
	}
	return &Document{root: root, Format: format}, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	raw := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return nil, errors.Newf("decoding TOML at line %d column %d: %s", row, col, derr.Error())
			}
			return nil, errors.Wrap(err, "decoding TOML")
		}
	default:
		return nil, errors.Newf("unsupported format %q", format)
	}
	return raw, nil
}

func build(opt schema.Option, raw map[string]any, path string) (*Section, error) {
	sec := newSection(opt)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		val := raw[key]
		keyPath := joinPath(path, key)

		if key == schema.TitleKey && opt.Is(schema.Titled) {
			title, ok := scalarString(val)
			if !ok {
				return nil, &ParseError{Key: keyPath, Err: errors.Newf("title must be a string, got %T", val)}
			}
			sec.title, sec.hasTitle = title, true
			continue
		}

		child, ok := opt.Lookup(key)
		if !ok {
			return nil, &ParseError{Key: keyPath, Err: errors.New("no such option")}
		}

		if child.Kind == schema.KindSection {
			subs, err := buildChildren(child, val, keyPath)
			if err != nil {
				return nil, err
			}
			sec.children[key] = subs
			continue
		}

		v, err := convert(child.Kind, val)
		if err != nil {
			return nil, &ParseError{Key: keyPath, Err: err}
		}
		sec.values[key] = v
	}

	return sec, nil
}

func buildChildren(opt schema.Option, val any, path string) ([]*Section, error) {
	var items []any
	switch v := val.(type) {
	case nil:
		items = []any{map[string]any{}}
	case []any:
		if !opt.Is(schema.Multi) {
			return nil, &ParseError{Key: path, Err: errors.New("section may appear only once")}
		}
		items = v
	default:
		items = []any{v}
	}

	subs := make([]*Section, 0, len(items))
	for i, item := range items {
		itemPath := path
		if opt.Is(schema.Multi) {
			itemPath = fmt.Sprintf("%s[%d]", path, i)
		}
		m, ok := item.(map[string]any)
		if item == nil {
			m, ok = map[string]any{}, true
		}
		if !ok {
			return nil, &ParseError{Key: itemPath, Err: errors.Newf("expected a section, got %T", item)}
		}
		sub, err := build(opt, m, itemPath)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func convert(kind schema.Kind, val any) (any, error) {
	switch kind {
	case schema.KindInt:
		if n, ok := toInt(val); ok {
			return n, nil
		}
	case schema.KindFloat:
		if f, ok := toFloat(val); ok {
			return f, nil
		}
	case schema.KindBool:
		if b, ok := val.(bool); ok {
			return b, nil
		}
	case schema.KindString:
		if s, ok := scalarString(val); ok {
			return s, nil
		}
	case schema.KindStringList:
		if s, ok := val.(string); ok {
			return []string{s}, nil
		}
		if list, ok := val.([]any); ok {
			out := make([]string, 0, len(list))
			for _, e := range list {
				s, ok := e.(string)
				if !ok {
					return nil, errors.Newf("expected %s, got element of type %T", kind, e)
				}
				out = append(out, s)
			}
			return out, nil
		}
	}
	return nil, errors.Newf("expected %s, got %T", kind, val)
}

func toInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
	}
	return 0, false
}

func toFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// scalarString accepts strings, and integers for titles such as `title = 1`.
func scalarString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case int, int64, uint64:
		return fmt.Sprint(v), true
	}
	return "", false
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
