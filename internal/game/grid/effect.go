package grid

import (
	"fmt"
	"strings"
)

// Effect is the special effect carried by a tile.
type Effect int

const (
	EffectNone Effect = iota
	EffectFire
	EffectSleep
	EffectPoison
	EffectPoisonField
	EffectElectricity
	EffectLava
)

var effectNames = map[Effect]string{
	EffectNone:        "none",
	EffectFire:        "fire",
	EffectSleep:       "sleep",
	EffectPoison:      "poison",
	EffectPoisonField: "poison_field",
	EffectElectricity: "electricity",
	EffectLava:        "lava",
}

// String returns the effect's config name.
func (e Effect) String() string {
	if n, ok := effectNames[e]; ok {
		return n
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// ParseEffect converts a config name to an Effect.
func ParseEffect(s string) (Effect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EffectNone, nil
	}
	for e, n := range effectNames {
		if n == s {
			return e, nil
		}
	}
	return EffectNone, fmt.Errorf("grid: unknown effect %q", s)
}

// UnmarshalText lets an Effect be decoded from YAML.
func (e *Effect) UnmarshalText(text []byte) error {
	v, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
