package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// HookCaller runs a creature behaviour hook and returns the chosen action name.
// *scripting.Manager satisfies this interface.
type HookCaller interface {
	CallCreatureHook(profile, hook string, info scripting.CreatureInfo, src dice.Source) (string, error)
}

// ScriptedAI asks a creature's Lua hook for its action. The profile is the
// creature template id and the hook is the template's script name. Creatures
// with no script, hooks that fail, and unknown action names fall back.
type ScriptedAI struct {
	Hooks    HookCaller
	Fallback CreatureAI
	Logger   *zap.Logger
}

// NewScriptedAI returns a ScriptedAI over hooks with BasicAI as the fallback.
//
// Precondition: hooks must be non-nil.
func NewScriptedAI(hooks HookCaller, logger *zap.Logger) *ScriptedAI {
	if hooks == nil {
		panic("combat: NewScriptedAI precondition violated: nil hooks")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScriptedAI{Hooks: hooks, Fallback: BasicAI{}, Logger: logger}
}

// Decide implements CreatureAI.
func (a *ScriptedAI) Decide(s Situation, src Source) Action {
	tmpl := s.Self.Creature.Template
	if tmpl.Script == "" {
		return a.Fallback.Decide(s, src)
	}
	name, err := a.Hooks.CallCreatureHook(tmpl.ID, tmpl.Script, creatureInfo(s), src)
	if err != nil {
		a.Logger.Warn("creature script failed",
			zap.String("template", tmpl.ID),
			zap.String("hook", tmpl.Script),
			zap.Error(err),
		)
		return a.Fallback.Decide(s, src)
	}
	if name == "" {
		return a.Fallback.Decide(s, src)
	}
	act, err := ParseAction(name)
	if err != nil {
		a.Logger.Warn("creature script chose unknown action",
			zap.String("template", tmpl.ID),
			zap.String("action", name),
		)
		return a.Fallback.Decide(s, src)
	}
	return act
}

func creatureInfo(s Situation) scripting.CreatureInfo {
	inst := s.Self.Creature
	info := scripting.CreatureInfo{
		ID:         inst.ID,
		Name:       inst.Name(),
		HP:         inst.HP,
		MaxHP:      inst.MaxHP,
		Distance:   s.Distance,
		Evil:       inst.Template.IsEvil(),
		Ranged:     inst.Template.Ranged,
		Range:      inst.Template.Range,
		Wounded:    inst.Wounded(),
		Health:     inst.HealthDescription(),
		Teleports:  inst.Template.Teleports,
		CastsSleep: inst.Template.CastsSleep,
		Aura:       s.Aura.String(),
		TargetName: s.Target.Name(),
		TargetKind: s.Target.Kind.String(),
	}
	if s.Target.Kind == KindPlayer {
		info.TargetHP, info.TargetMaxHP = s.Target.Member.HP, s.Target.Member.MaxHP
	} else {
		info.TargetHP, info.TargetMaxHP = s.Target.Creature.HP, s.Target.Creature.MaxHP
	}
	return info
}
