package condition

import (
	"fmt"
	"strings"
)

// AuraKind identifies a global combat modifier.
type AuraKind int

const (
	AuraNone AuraKind = iota
	AuraHorn
	AuraJinx
	AuraNegate
	AuraProtection
	AuraQuickness
)

var auraNames = [...]string{"none", "horn", "jinx", "negate", "protection", "quickness"}

// String returns the aura name.
func (k AuraKind) String() string {
	if int(k) >= 0 && int(k) < len(auraNames) {
		return auraNames[k]
	}
	return fmt.Sprintf("aura(%d)", int(k))
}

// ParseAuraKind converts a name to an AuraKind.
func ParseAuraKind(name string) (AuraKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return AuraNone, nil
	}
	for i, s := range auraNames {
		if s == n {
			return AuraKind(i), nil
		}
	}
	return AuraNone, fmt.Errorf("condition: unknown aura %q", name)
}

// UnmarshalText lets an AuraKind be decoded from YAML.
func (k *AuraKind) UnmarshalText(text []byte) error {
	v, err := ParseAuraKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Aura is the single active aura of an encounter. The zero value is no aura.
// It is not safe for concurrent use.
type Aura struct {
	kind     AuraKind
	duration int
}

// Set activates kind for duration rounds, replacing any current aura.
//
// Precondition: duration >= 0.
// Postcondition: Kind() == kind unless duration == 0, in which case the aura is cleared.
func (a *Aura) Set(kind AuraKind, duration int) {
	if duration <= 0 || kind == AuraNone {
		a.kind, a.duration = AuraNone, 0
		return
	}
	a.kind, a.duration = kind, duration
}

// Kind returns the active aura.
func (a *Aura) Kind() AuraKind { return a.kind }

// Duration returns the remaining rounds.
func (a *Aura) Duration() int { return a.duration }

// Is reports whether kind is the active aura.
func (a *Aura) Is(kind AuraKind) bool { return a.kind == kind }

// PassTurn ages the aura by one round, clearing it when it runs out.
//
// Postcondition: Duration() decreases by one; Kind() == AuraNone when it reaches zero.
func (a *Aura) PassTurn() {
	if a.kind == AuraNone {
		return
	}
	a.duration--
	if a.duration <= 0 {
		a.kind, a.duration = AuraNone, 0
	}
}
