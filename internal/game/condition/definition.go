package condition

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AuraDef is the static definition of an aura, loaded from YAML.
type AuraDef struct {
	ID       string   `yaml:"id"`
	Kind     AuraKind `yaml:"kind"`
	Name     string   `yaml:"name"`
	Duration int      `yaml:"duration"`
	// Message is announced when the aura is invoked.
	Message string `yaml:"message"`
}

// Validate checks the definition's invariants.
func (d *AuraDef) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("aura def: id must not be empty")
	}
	if d.Kind == AuraNone {
		return fmt.Errorf("aura def %q: kind must not be none", d.ID)
	}
	if d.Duration < 1 {
		return fmt.Errorf("aura def %q: duration must be >= 1", d.ID)
	}
	return nil
}

// Registry holds all known AuraDefs keyed by ID.
type Registry struct {
	defs map[string]*AuraDef
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*AuraDef)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *AuraDef) {
	r.defs[def.ID] = def
}

// Get returns the AuraDef for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*AuraDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns the registered definitions sorted by ID.
func (r *Registry) All() []*AuraDef {
	out := make([]*AuraDef, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Invoke activates the aura with the given id on a.
//
// Postcondition: Returns the definition applied, or an error if id is unknown.
func (r *Registry) Invoke(id string, a *Aura) (*AuraDef, error) {
	d, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("condition: unknown aura def %q", id)
	}
	a.Set(d.Kind, d.Duration)
	return d, nil
}

// LoadDirectory reads every *.yaml file in dir, parses each as an AuraDef,
// and returns a populated Registry.
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading aura dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var def AuraDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		reg.Register(&def)
	}
	return reg, nil
}
