// Package request reads calculation requests from JSON or YAML documents,
// checks them against the request schema and fills in configured defaults.
package request

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaData []byte

var schema = gojsonschema.NewBytesLoader(schemaData)

// Format is the encoding of a request document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported request file %s: want .json, .yaml or .yml", path)
}

// Defaults fill the optional parts of a request. Only the bearing length of
// Geometry is used; span and tributary width are always given.
type Defaults struct {
	Material   engine.Material
	Geometry   engine.Geometry
	Factors    loads.Factors
	Deflection engine.Deflection
}

// Item is a decoded request with its optional id.
type Item struct {
	ID      string
	Request engine.Request
}

// SchemaError lists every schema violation of a document.
type SchemaError struct {
	Index  int // position in a list document, -1 for a single request
	Errors []string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("request does not match schema: %s", strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("request %d does not match schema: %s", e.Index, strings.Join(e.Errors, "; "))
}

// Decode reads a single request.
func Decode(data []byte, f Format, d Defaults) (Item, error) {
	doc, err := parse(data, f)
	if err != nil {
		return Item{}, err
	}
	if _, ok := doc.([]any); ok {
		return Item{}, fmt.Errorf("expected a single request, got a list")
	}
	return decodeOne(doc, -1, d)
}

// DecodeAll reads a single request or a list of requests.
func DecodeAll(data []byte, f Format, d Defaults) ([]Item, error) {
	doc, err := parse(data, f)
	if err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		it, err := decodeOne(doc, -1, d)
		if err != nil {
			return nil, err
		}
		return []Item{it}, nil
	}
	items := make([]Item, 0, len(list))
	for i, v := range list {
		it, err := decodeOne(v, i, d)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ReadFile reads every request in a JSON or YAML file.
func ReadFile(path string, d Defaults) ([]Item, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	return DecodeAll(data, f, d)
}

func parse(data []byte, f Format) (any, error) {
	var doc any
	switch f {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON request: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML request: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown request format %q", f)
	}
	return doc, nil
}

func decodeOne(doc any, index int, d Defaults) (Item, error) {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Item{}, fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return Item{}, &SchemaError{Index: index, Errors: errs}
	}

	// The schema guarantees an object with string keys, so the document
	// converts cleanly through JSON onto the defaults.
	raw, err := json.Marshal(doc)
	if err != nil {
		return Item{}, fmt.Errorf("failed to re-encode request: %w", err)
	}
	req := engine.Request{
		Material:   d.Material,
		Geometry:   engine.Geometry{BearingLength: d.Geometry.BearingLength},
		Factors:    d.Factors,
		Deflection: d.Deflection,
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return Item{}, fmt.Errorf("failed to decode request: %w", err)
	}

	var it Item
	it.Request = req
	if m, ok := doc.(map[string]any); ok {
		if id, ok := m["id"].(string); ok {
			it.ID = id
		}
	}
	return it, nil
}
