package creature

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Instance is a live creature owned by an encounter.
type Instance struct {
	// ID uniquely identifies this runtime instance.
	ID       string
	Template *Template
	HP       int
	MaxHP    int
	Status   condition.Status
	Coords   grid.Coords
}

// NewInstance creates a live creature at full health.
//
// Precondition: tmpl must be non-nil and validated.
// Postcondition: HP equals tmpl.MaxHP; Status is Good.
func NewInstance(tmpl *Template) *Instance {
	return &Instance{
		ID:       uuid.NewString(),
		Template: tmpl,
		HP:       tmpl.MaxHP,
		MaxHP:    tmpl.MaxHP,
		Status:   condition.Good,
	}
}

// Name returns the template name.
func (i *Instance) Name() string { return i.Template.Name }

// IsDead reports whether the instance has no hit points left.
func (i *Instance) IsDead() bool { return i.Status == condition.Dead }

// IsDisabled reports whether the creature skips its action.
func (i *Instance) IsDisabled() bool { return i.Status.Disabled() }

// ApplyDamage removes amount hit points.
//
// Precondition: amount >= 0.
// Postcondition: Returns false, with Status Dead and HP 0, when the creature was killed.
func (i *Instance) ApplyDamage(amount int) bool {
	i.HP -= amount
	if i.HP <= 0 {
		i.HP = 0
		i.Status = condition.Dead
		return false
	}
	return true
}

// PutToSleep puts a living creature to sleep. Returns false if it was already asleep or dead.
func (i *Instance) PutToSleep() bool {
	if i.Status.Disabled() {
		return false
	}
	i.Status = condition.Sleeping
	return true
}

// WakeUp wakes a sleeping creature.
func (i *Instance) WakeUp() {
	if i.Status == condition.Sleeping {
		i.Status = condition.Good
	}
}

// Poison poisons a creature that is neither dead nor already poisoned.
func (i *Instance) Poison() bool {
	if i.Status != condition.Good && i.Status != condition.Sleeping {
		return false
	}
	i.Status = condition.Poisoned
	return true
}

// Resists reports whether the creature ignores tile effect e.
func (i *Instance) Resists(e grid.Effect) bool {
	return e != grid.EffectNone && i.Template.Resists == e
}

// Wounded reports whether the creature is below a quarter of its hit points.
func (i *Instance) Wounded() bool {
	return i.HP*4 < i.MaxHP
}

// HealthDescription returns a visible health state string.
//
// Postcondition: Returns a non-empty string.
func (i *Instance) HealthDescription() string {
	if i.HP <= 0 {
		return "dead"
	}
	pct := float64(i.HP) / float64(i.MaxHP)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.25:
		return "heavily wounded"
	default:
		return "fleeing"
	}
}
