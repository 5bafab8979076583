package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/twguide/errors"
)

// Format names a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON}

// document is the on-disk shape shared by every encoding. Categories are a
// list rather than a map so file order survives decoding.
type document struct {
	Categories []Category `yaml:"categories" toml:"categories" json:"categories"`
}

// ParseFormat resolves a user-supplied format name ("yml" is accepted).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.UnsupportedFormat(s)
}

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseFormat(ext)
}

// Load reads and validates a catalog file. The encoding is taken from the
// file extension.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CatalogNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid, "failed to read catalog file").
			WithDetail("path", path)
	}

	c, err := Parse(data, format)
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("file", path)
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errors.UnsupportedFormat(string(format))
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCatalogInvalid, "failed to decode catalog").
			WithDetail("format", string(format))
	}
	return New(doc.Categories...)
}

// Marshal encodes c in the given format, preserving order.
func Marshal(c *Catalog, format Format) ([]byte, error) {
	doc := document{Categories: c.Categories()}
	if doc.Categories == nil {
		doc.Categories = []Category{}
	}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode catalog as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode catalog as yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode catalog as toml")
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode catalog as json")
		}
		return append(data, '\n'), nil
	}
	return nil, errors.UnsupportedFormat(string(format))
}
