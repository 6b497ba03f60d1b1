package party

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// MemberSpec is the YAML form of a member.
type MemberSpec struct {
	Name    string           `yaml:"name"`
	MaxHP   int              `yaml:"max_hp"`
	Dex     int              `yaml:"dex"`
	Defense int              `yaml:"defense"`
	Weapon  string           `yaml:"weapon"`
	Status  condition.Status `yaml:"status"`
}

// Spec is a party roster loaded from YAML. Build turns it into a fresh Party
// so each simulated adventure starts from the same roster.
type Spec struct {
	Food    int            `yaml:"food"`
	Members []MemberSpec   `yaml:"members"`
	Armory  map[string]int `yaml:"armory"`
}

// ParseSpec parses a roster from YAML bytes.
//
// Postcondition: Returns a spec with 1..MaxMembers named members with max_hp >= 1, or an error.
func ParseSpec(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing party YAML: %w", err)
	}
	if len(s.Members) == 0 || len(s.Members) > MaxMembers {
		return nil, fmt.Errorf("party: need 1..%d members, got %d", MaxMembers, len(s.Members))
	}
	for i, m := range s.Members {
		if m.Name == "" {
			return nil, fmt.Errorf("party: member %d has no name", i)
		}
		if m.MaxHP < 1 {
			return nil, fmt.Errorf("party: member %q max_hp must be >= 1", m.Name)
		}
	}
	return &s, nil
}

// LoadSpec reads a roster file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading party file %q: %w", path, err)
	}
	return ParseSpec(data)
}

// Build creates a Party from the first size members; size <= 0 takes all of them.
//
// Postcondition: Returns an error if a member or armory entry names an unknown weapon.
func (s *Spec) Build(weapons *weapon.Catalog, size int) (*Party, error) {
	if size <= 0 || size > len(s.Members) {
		size = len(s.Members)
	}
	members := make([]*Member, 0, size)
	for _, ms := range s.Members[:size] {
		w := weapons.Hands()
		if ms.Weapon != "" {
			var ok bool
			if w, ok = weapons.ByID(ms.Weapon); !ok {
				return nil, fmt.Errorf("party: member %q wields unknown weapon %q", ms.Name, ms.Weapon)
			}
		}
		hp := ms.MaxHP
		if ms.Status == condition.Dead {
			hp = 0
		}
		members = append(members, &Member{
			Name:    ms.Name,
			Status:  ms.Status,
			HP:      hp,
			MaxHP:   ms.MaxHP,
			Dex:     ms.Dex,
			Defense: ms.Defense,
			Weapon:  w,
		})
	}
	p := New(weapons.Hands(), s.Food, members...)
	for id, n := range s.Armory {
		if _, ok := weapons.ByID(id); !ok {
			return nil, fmt.Errorf("party: armory holds unknown weapon %q", id)
		}
		p.Stock(id, n)
	}
	return p, nil
}
