package document

import (
	"context"
	_ "embed"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
	"github.com/thoreinstein/tagwm/internal/paths"
	"github.com/thoreinstein/tagwm/pkg/fileutil"
)

//go:embed default.toml
var defaultConfig []byte

// Document is a parsed configuration document. It is only valid for the
// duration of one compilation pass.
type Document struct {
	// Path is the resolved document path. It is set even when the file
	// could not be used.
	Path string
	// Format is the syntax the document was parsed from.
	Format Format
	// Fallback is true when the compiled-in default replaced the file.
	Fallback bool

	root *Section
}

// Root returns the top-level section.
func (d *Document) Root() *Section {
	return d.root
}

// DefaultText returns the compiled-in default document.
func DefaultText() []byte {
	return slices.Clone(defaultConfig)
}

// DefaultTextFor returns the compiled-in default document in format.
// The YAML rendition carries the same values without the TOML comments.
func DefaultTextFor(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return DefaultText(), nil
	case FormatYAML:
		raw, err := decode(defaultConfig, FormatTOML)
		if err != nil {
			return nil, errors.Wrap(err, "decoding built-in default configuration")
		}
		out, err := yaml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, "encoding default configuration as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf("unsupported format %q", format)
	}
}

// ParseDefault parses the compiled-in default document.
func ParseDefault() (*Document, error) {
	doc, err := Parse(defaultConfig, FormatTOML)
	if err != nil {
		return nil, errors.Wrap(err, "parsing built-in default configuration")
	}
	doc.Fallback = true
	return doc, nil
}

// LoadOptions controls how Load reacts to a malformed document.
type LoadOptions struct {
	// Strict makes a structural parse error fatal instead of falling back
	// to the compiled-in default.
	Strict bool
}

// Load resolves the document path and parses it. A missing or unreadable
// file is reported and replaced by the compiled-in default. A malformed
// file is reported and replaced the same way unless opts.Strict is set,
// in which case the *ParseError is returned.
func Load(ctx context.Context, explicit string, opts LoadOptions) (*Document, error) {
	logger := logging.FromContext(ctx)

	path, err := paths.ConfigPath(explicit)
	if err != nil {
		logger.Warn("cannot resolve configuration path, using defaults", "error", err)
		return ParseDefault()
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		logger.Warn("parsing configuration file failed, using defaults", "path", path, "error", err)
		return fallback(path)
	}

	doc, err := Parse(data, FormatFor(path))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		if opts.Strict {
			return nil, err
		}
		logger.Warn("malformed configuration file, using defaults", "path", path, "error", err)
		return fallback(path)
	}

	doc.Path = path
	logger.Debug("loaded configuration", "path", path, "format", doc.Format)
	return doc, nil
}

func fallback(path string) (*Document, error) {
	doc, err := ParseDefault()
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}
