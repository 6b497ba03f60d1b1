// Package weapon provides the attack profiles consumed by the combat resolver.
package weapon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// HandsID is the weapon every party member falls back to.
const HandsID = "hands"

// LossPolicy controls when a weapon is consumed by an attack.
type LossPolicy string

const (
	// LossNever keeps the weapon.
	LossNever LossPolicy = "never"
	// LossAlways consumes the weapon on every attack.
	LossAlways LossPolicy = "always"
	// LossRanged consumes the weapon unless it struck a target at distance 1.
	LossRanged LossPolicy = "ranged"
)

// Weapon defines the static properties of a weapon loaded from YAML.
type Weapon struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Range int    `yaml:"range"`
	// AbsoluteRange weapons only strike at exactly the chosen distance.
	AbsoluteRange bool `yaml:"absolute_range"`
	Magic         bool `yaml:"magic"`
	// ChooseDistance weapons ask for a distance before attacking.
	ChooseDistance bool `yaml:"choose_distance"`
	// ShowTravel flashes the miss tile on every cell the attack crosses.
	ShowTravel           bool   `yaml:"show_travel"`
	AttackThroughObjects bool   `yaml:"attack_through_objects"`
	AlwaysHits           bool   `yaml:"always_hits"`
	HitTile              string `yaml:"hit_tile"`
	MissTile             string `yaml:"miss_tile"`
	// LeavesTile, when set, is dropped where the attack lands.
	LeavesTile string     `yaml:"leaves_tile"`
	Returns    bool       `yaml:"returns"`
	Loss       LossPolicy `yaml:"loss"`
	Damage     string     `yaml:"damage"`

	damage dice.Expression
}

// Validate checks that the Weapon satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid; an empty Loss becomes LossNever.
func (w *Weapon) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.Range < 1 || w.Range > 9 {
		errs = append(errs, errors.New("Range must be in [1,9]"))
	}
	switch w.Loss {
	case "":
		w.Loss = LossNever
	case LossNever, LossAlways, LossRanged:
	default:
		errs = append(errs, fmt.Errorf("Loss %q must be never, always or ranged", w.Loss))
	}
	expr, err := dice.Parse(w.Damage)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	w.damage = expr
	return nil
}

// DamageDice returns the parsed damage expression.
//
// Precondition: Validate returned nil.
func (w *Weapon) DamageDice() dice.Expression { return w.damage }

// IsRanged reports whether the weapon reaches past adjacent cells.
func (w *Weapon) IsRanged() bool { return w.Range > 1 }

// Consumed reports whether an attack that found a target (or not) at distance
// uses up the weapon.
//
// Postcondition: LossAlways is always consumed; LossRanged is consumed iff
// !found or distance > 1; LossNever is never consumed.
func (w *Weapon) Consumed(found bool, distance int) bool {
	switch w.Loss {
	case LossAlways:
		return true
	case LossRanged:
		return !found || distance > 1
	default:
		return false
	}
}

// LoadWeaponFromBytes parses and validates a single weapon.
func LoadWeaponFromBytes(data []byte) (*Weapon, error) {
	var w Weapon
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing weapon YAML: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadWeapons reads all *.yaml files from dir, parses each as a Weapon,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Weapons or the first encountered error.
func LoadWeapons(dir string) ([]*Weapon, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: cannot read directory %q: %w", dir, err)
	}

	var weapons []*Weapon
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot read file %q: %w", path, err)
		}
		w, err := LoadWeaponFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

// Catalog indexes weapons by id. Read-only after construction.
type Catalog struct {
	byID map[string]*Weapon
}

// NewCatalog indexes weapons.
//
// Postcondition: Returns an error on a duplicate id or when HandsID is missing.
func NewCatalog(weapons []*Weapon) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Weapon)}
	for _, w := range weapons {
		if _, dup := c.byID[w.ID]; dup {
			return nil, fmt.Errorf("weapon catalog: duplicate id %q", w.ID)
		}
		c.byID[w.ID] = w
	}
	if _, ok := c.byID[HandsID]; !ok {
		return nil, fmt.Errorf("weapon catalog: missing %q", HandsID)
	}
	return c, nil
}

// LoadCatalog loads every weapon in dir into a Catalog.
func LoadCatalog(dir string) (*Catalog, error) {
	weapons, err := LoadWeapons(dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(weapons)
}

// ByID returns the weapon with id.
func (c *Catalog) ByID(id string) (*Weapon, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// Hands returns the bare-handed weapon.
func (c *Catalog) Hands() *Weapon { return c.byID[HandsID] }

// IDs returns every weapon id in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
