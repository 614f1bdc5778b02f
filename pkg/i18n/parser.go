package i18n

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Parser decodes a catalog file into locale → translation tree.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser matching the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// MultiParser dispatches on file extension to the first parser that supports it.
type MultiParser []Parser

// DefaultParsers handles YAML and JSON catalogs.
func DefaultParsers() MultiParser {
	return MultiParser{NewYAMLParser(), NewJSONParser()}
}

func (m MultiParser) SupportsFileExtension(ext string) bool {
	return m.forExtension(ext) != nil
}

// Parse tries each parser in order and returns the first successful result.
// Prefer ParseFile when the file name is known.
func (m MultiParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	errs := []error{ErrUnsupportedFileType}
	for _, p := range m {
		tree, err := p.Parse(ctx, content)
		if err == nil {
			return tree, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// ParseFile picks the parser by the extension of name.
func (m MultiParser) ParseFile(ctx context.Context, name string, content []byte) (map[string]map[string]any, error) {
	p := m.forExtension(filepath.Ext(name))
	if p == nil {
		return nil, ErrUnsupportedFileType
	}
	return p.Parse(ctx, content)
}

func (m MultiParser) forExtension(ext string) Parser {
	for _, p := range m {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// normalizeTree converts nested map[any]any values into map[string]any so
// lookups only need to handle one map type.
func normalizeTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalizeTree(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeTree(child)
			}
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalizeTree(child)
		}
		return t
	default:
		return v
	}
}
