// SPDX-License-Identifier: MIT
package converters

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks the Format from the file extension (.yaml, .yml, .toml, .hcl).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses data in format f. Unknown keys are rejected.
func Decode(data []byte, f Format) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch f {
	case FormatYAML:
		err = decodeYAML(data, &doc)
	case FormatTOML:
		err = decodeTOML(data, &doc)
	case FormatHCL:
		err = decodeHCL(data, "document.hcl", &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode renders doc in format f.
func Encode(doc *Document, f Format) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("converters: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("converters: encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("converters: encode toml: %w", err)
		}
	case FormatHCL:
		buf.Write(encodeHCL(doc))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return buf.Bytes(), nil
}

// Load reads and decodes the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("converters: read %s: %w", path, err)
	}
	if f == FormatHCL {
		var doc Document
		if err = decodeHCL(data, path, &doc); err != nil {
			return nil, err
		}
		if err = doc.Validate(); err != nil {
			return nil, err
		}

		return &doc, nil
	}

	return Decode(data, f)
}

// Save encodes doc by the extension of path and writes it with mode 0644.
func Save(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, f)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("converters: write %s: %w", path, err)
	}

	return nil
}

func decodeYAML(data []byte, doc *Document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty yaml document", ErrInvalidDocument)
		}

		return fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
	}

	return nil
}

func decodeTOML(data []byte, doc *Document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return fmt.Errorf("%w: toml: %w", ErrInvalidDocument, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return fmt.Errorf("%w: toml: unknown keys %v", ErrInvalidDocument, und)
	}

	return nil
}
