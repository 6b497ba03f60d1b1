// Package creature provides creature templates, the creature catalog, and
// live creature instances owned by an encounter.
package creature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Template ids with special population rules.
const (
	PirateID = "pirate"
	RogueID  = "rogue"
	GuardID  = "guard"
)

// Alignment is a creature's moral alignment, which drives karma on win or flee.
type Alignment int

const (
	Neutral Alignment = iota
	Evil
	Good
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case Evil:
		return "evil"
	case Good:
		return "good"
	default:
		return "neutral"
	}
}

// UnmarshalText lets an Alignment be decoded from YAML.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "neutral":
		*a = Neutral
	case "evil":
		*a = Evil
	case "good":
		*a = Good
	default:
		return fmt.Errorf("creature: unknown alignment %q", string(text))
	}
	return nil
}

// Template defines a creature type loaded from YAML.
type Template struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// Tile is the tile name the creature is drawn with; dungeon rooms place
	// creatures by tile.
	Tile string `yaml:"tile"`
	// Leader is the id of the creature type this one is recruited under.
	// Empty means the creature leads itself.
	Leader string `yaml:"leader"`
	// EncounterSize, when positive, scales the number of creatures drawn.
	EncounterSize int       `yaml:"encounter_size"`
	Alignment     Alignment `yaml:"alignment"`
	MaxHP         int       `yaml:"max_hp"`
	AttackBonus   int       `yaml:"attack_bonus"`
	Defense       int       `yaml:"defense"`
	Damage        string    `yaml:"damage"`
	XP            int       `yaml:"xp"`
	// Ranged creatures attack along a line up to Range cells.
	Ranged   bool   `yaml:"ranged"`
	Range    int    `yaml:"range"`
	HitTile  string `yaml:"hit_tile"`
	MissTile string `yaml:"miss_tile"`
	// LeavesTile creatures drop their hit tile where a ranged attack lands.
	LeavesTile  bool        `yaml:"leaves_tile"`
	LeavesChest bool        `yaml:"leaves_chest"`
	PirateShip  bool        `yaml:"pirate_ship"`
	Resists     grid.Effect `yaml:"resists"`
	NoFlee      bool        `yaml:"no_flee"`
	// CastsSleep creatures may put the whole party to sleep instead of attacking.
	CastsSleep bool `yaml:"casts_sleep"`
	Teleports  bool `yaml:"teleports"`
	// Negates creatures suppress magic for everyone while they are present.
	Negates bool `yaml:"negates"`
	// Script names the AI profile consulted for this creature's turn.
	// Empty means the built-in behaviour.
	Script string `yaml:"script"`

	damage dice.Expression
}

// Validate checks that the template satisfies basic invariants and parses its damage dice.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID, Name, and Tile are non-empty, MaxHP >= 1,
// Defense is in [0,255], Damage parses, and ranged creatures have Range >= 1.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("creature template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("creature template %q: name must not be empty", t.ID)
	}
	if t.Tile == "" {
		return fmt.Errorf("creature template %q: tile must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("creature template %q: max_hp must be >= 1", t.ID)
	}
	if t.Defense < 0 || t.Defense > 255 {
		return fmt.Errorf("creature template %q: defense must be in [0,255]", t.ID)
	}
	if t.EncounterSize < 0 {
		return fmt.Errorf("creature template %q: encounter_size must be >= 0", t.ID)
	}
	if t.Ranged && t.Range < 1 {
		return fmt.Errorf("creature template %q: ranged creatures need range >= 1", t.ID)
	}
	expr, err := dice.Parse(t.Damage)
	if err != nil {
		return fmt.Errorf("creature template %q: damage: %w", t.ID, err)
	}
	t.damage = expr
	return nil
}

// DamageDice returns the parsed damage expression.
//
// Precondition: Validate returned nil.
func (t *Template) DamageDice() dice.Expression { return t.damage }

// IsEvil reports whether defeating or fleeing this creature affects karma as evil.
func (t *Template) IsEvil() bool { return t.Alignment == Evil }

// IsGood reports whether the creature is of good alignment.
func (t *Template) IsGood() bool { return t.Alignment == Good }

// LoadTemplateFromBytes parses a single creature template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading creature dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
