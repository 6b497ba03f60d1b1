package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// CreatureInfo is the read-only view of a creature's turn handed to a
// behaviour hook as a Lua table with the same snake_case field names.
type CreatureInfo struct {
	ID         string
	Name       string
	HP         int
	MaxHP      int
	Distance   int
	Evil       bool
	Ranged     bool
	Range      int
	Wounded    bool
	// Health is the creature's visible health state, e.g. "lightly wounded".
	Health     string
	Teleports  bool
	CastsSleep bool
	Aura       string

	TargetName  string
	TargetHP    int
	TargetMaxHP int
	// TargetKind is "player" or "creature".
	TargetKind string
}

func (c CreatureInfo) table(L *lua.LState) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "id", lua.LString(c.ID))
	L.SetField(t, "name", lua.LString(c.Name))
	L.SetField(t, "hp", lua.LNumber(c.HP))
	L.SetField(t, "max_hp", lua.LNumber(c.MaxHP))
	L.SetField(t, "distance", lua.LNumber(c.Distance))
	L.SetField(t, "evil", lua.LBool(c.Evil))
	L.SetField(t, "ranged", lua.LBool(c.Ranged))
	L.SetField(t, "range", lua.LNumber(c.Range))
	L.SetField(t, "wounded", lua.LBool(c.Wounded))
	L.SetField(t, "health", lua.LString(c.Health))
	L.SetField(t, "teleports", lua.LBool(c.Teleports))
	L.SetField(t, "casts_sleep", lua.LBool(c.CastsSleep))
	L.SetField(t, "aura", lua.LString(c.Aura))

	target := L.NewTable()
	L.SetField(target, "name", lua.LString(c.TargetName))
	L.SetField(target, "hp", lua.LNumber(c.TargetHP))
	L.SetField(target, "max_hp", lua.LNumber(c.TargetMaxHP))
	L.SetField(target, "kind", lua.LString(c.TargetKind))
	L.SetField(t, "target", target)
	return t
}

// CallCreatureHook calls hook(info) in profile's VM and returns the action
// name the hook chose. engine.random and engine.dice draw from src for the
// duration of the call so scripted turns replay under a seeded source.
//
// Precondition: hook must be non-empty.
// Postcondition: returns "" with nil error when the hook is missing, fails at
// runtime, or returns nothing; returns an error when it returns a non-string.
func (m *Manager) CallCreatureHook(profile, hook string, info CreatureInfo, src dice.Source) (string, error) {
	if hook == "" {
		panic("scripting: CallCreatureHook precondition violated: empty hook")
	}
	v := m.lookup(profile)
	if v == nil {
		return "", nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.src = src
	defer func() { v.src = nil }()

	ret := m.call(v, profile, hook, func(L *lua.LState) []lua.LValue {
		return []lua.LValue{info.table(L)}
	})
	switch r := ret.(type) {
	case *lua.LNilType:
		return "", nil
	case lua.LString:
		return string(r), nil
	default:
		return "", fmt.Errorf("scripting: hook %q in %q returned %s, want string", hook, profile, ret.Type())
	}
}
