// Package catalog holds the read-only product tables: stud and runner
// sections, hanger rods and anchors.
//
// A Registry is built once and never mutated, so a single instance may be
// shared by any number of concurrent calculations.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultData []byte

// ErrNotFound is returned when an id does not resolve.
var ErrNotFound = errors.New("not found in catalog")

// Registry is an immutable lookup of sections and fasteners by id.
type Registry struct {
	sections  map[string]Section
	fasteners map[string]Fastener
}

type document struct {
	Sections  []Section  `yaml:"sections"`
	Fasteners []Fastener `yaml:"fasteners"`
}

// New validates the records and builds a registry from them.
func New(sections []Section, fasteners []Fastener) (*Registry, error) {
	r := &Registry{
		sections:  make(map[string]Section, len(sections)),
		fasteners: make(map[string]Fastener, len(fasteners)),
	}
	for i := range sections {
		s := sections[i]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.sections[s.ID]; dup {
			return nil, &ValidationError{msg: fmt.Sprintf("duplicate section id %s", s.ID)}
		}
		r.sections[s.ID] = s
	}
	for i := range fasteners {
		f := fasteners[i]
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.fasteners[f.ID]; dup {
			return nil, &ValidationError{msg: fmt.Sprintf("duplicate fastener id %s", f.ID)}
		}
		r.fasteners[f.ID] = f
	}
	return r, nil
}

// Default returns the registry built from the embedded product tables.
func Default() (*Registry, error) {
	return Parse(defaultData)
}

// LoadFile builds a registry from a YAML file with the same layout as the
// embedded tables.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return r, nil
}

// Parse builds a registry from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Sections, doc.Fasteners)
}

// Section looks up a section by id.
func (r *Registry) Section(id string) (Section, error) {
	s, ok := r.sections[id]
	if !ok {
		return Section{}, fmt.Errorf("section %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Fastener looks up a hanger or anchor by id.
func (r *Registry) Fastener(id string) (Fastener, error) {
	f, ok := r.fasteners[id]
	if !ok {
		return Fastener{}, fmt.Errorf("fastener %q: %w", id, ErrNotFound)
	}
	return f, nil
}

// Sections lists the sections of the given kind sorted by id. An empty kind
// lists all of them.
func (r *Registry) Sections(kind SectionKind) []Section {
	out := make([]Section, 0, len(r.sections))
	for _, s := range r.sections {
		if kind == "" || s.Kind == kind {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Fasteners lists the fasteners of the given kind sorted by id. An empty kind
// lists all of them.
func (r *Registry) Fasteners(kind FastenerKind) []Fastener {
	out := make([]Fastener, 0, len(r.fasteners))
	for _, f := range r.fasteners {
		if kind == "" || f.Kind == kind {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
