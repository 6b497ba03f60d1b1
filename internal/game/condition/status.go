// Package condition provides combatant status and the timed auras that
// modify an encounter.
package condition

import (
	"fmt"
	"strings"
)

// Status is the single status a combatant carries.
type Status int

const (
	Good Status = iota
	Poisoned
	Sleeping
	Dead
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case Good:
		return "good"
	case Poisoned:
		return "poisoned"
	case Sleeping:
		return "sleeping"
	case Dead:
		return "dead"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Disabled reports whether a combatant with this status skips its turn.
func (s Status) Disabled() bool { return s == Sleeping || s == Dead }

// ParseStatus converts a name to a Status.
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "good":
		return Good, nil
	case "poisoned":
		return Poisoned, nil
	case "sleeping":
		return Sleeping, nil
	case "dead":
		return Dead, nil
	default:
		return Good, fmt.Errorf("condition: unknown status %q", name)
	}
}

// UnmarshalText lets a Status be decoded from YAML.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
