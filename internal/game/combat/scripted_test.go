package combat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

type hookCall struct {
	profile, hook string
	info          scripting.CreatureInfo
}

// fakeHooks answers every hook call with the same action name or error.
type fakeHooks struct {
	action string
	err    error
	calls  []hookCall
}

func (h *fakeHooks) CallCreatureHook(profile, hook string, info scripting.CreatureInfo, _ dice.Source) (string, error) {
	h.calls = append(h.calls, hookCall{profile, hook, info})
	return h.action, h.err
}

// scriptedSituation begins an encounter with one scripted archer three cells
// north of Iolo.
func scriptedSituation(t *testing.T, ai combat.CreatureAI) *combat.Encounter {
	t.Helper()
	archer := template(t, `
id: archer
name: Archer
tile: archer
max_hp: 20
damage: 1d4
ranged: true
range: 5
script: archer_act
`)
	m := openMap(t)
	m.CreatureStart[0] = grid.Coords{X: 1, Y: 6}
	f := newFixtureWith(t, m, world, catalog(t, archer), combat.Deps{Source: fixedSrc{0}, AI: ai}, member("Iolo"))
	f.e.Init(orcTrigger(archer))
	f.e.Begin()
	return f.e
}

func TestNewScriptedAI_PanicsOnNilHooks(t *testing.T) {
	assert.Panics(t, func() { combat.NewScriptedAI(nil, zap.NewNop()) })
}

func TestScriptedAI_PassesCreatureStateToHook(t *testing.T) {
	hooks := &fakeHooks{action: "advance"}
	ai := combat.NewScriptedAI(hooks, zap.NewNop())
	e := scriptedSituation(t, ai)
	e.Step(' ')

	require.Len(t, hooks.calls, 1)
	call := hooks.calls[0]
	assert.Equal(t, "archer", call.profile)
	assert.Equal(t, "archer_act", call.hook)
	assert.Equal(t, "Archer", call.info.Name)
	assert.Equal(t, 20, call.info.HP)
	assert.Equal(t, 3, call.info.Distance)
	assert.True(t, call.info.Ranged)
	assert.Equal(t, 5, call.info.Range)
	assert.Equal(t, "unharmed", call.info.Health)
	assert.Equal(t, "Iolo", call.info.TargetName)
	assert.Equal(t, 100, call.info.TargetHP)
	assert.Equal(t, "player", call.info.TargetKind)
	assert.Equal(t, "none", call.info.Aura)

	// the archer advanced one cell toward Iolo
	live := e.Table().LiveCreatures()
	require.Len(t, live, 1)
	assert.Equal(t, grid.Coords{X: 1, Y: 7}, live[0].Coords())
}

func TestScriptedAI_FallsBack(t *testing.T) {
	cases := []struct {
		name  string
		hooks *fakeHooks
		warn  string
	}{
		{"hook error", &fakeHooks{err: errors.New("boom")}, "creature script failed"},
		{"nil result", &fakeHooks{}, ""},
		{"unknown action", &fakeHooks{action: "dance"}, "creature script chose unknown action"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			ai := combat.NewScriptedAI(tc.hooks, zap.New(core))
			fallback := &recordingAI{def: combat.ActWait}
			ai.Fallback = fallback
			e := scriptedSituation(t, ai)
			e.Step(' ')

			assert.Equal(t, []string{"Archer"}, fallback.asked)
			if tc.warn == "" {
				assert.Zero(t, logs.Len())
			} else {
				assert.Equal(t, 1, logs.FilterMessage(tc.warn).Len())
			}
		})
	}
}

func TestScriptedAI_UnscriptedCreatureSkipsHooks(t *testing.T) {
	hooks := &fakeHooks{action: "flee"}
	ai := combat.NewScriptedAI(hooks, zap.NewNop())
	fallback := &recordingAI{def: combat.ActWait}
	ai.Fallback = fallback

	f := adjacentOrcFixture(t, orc(t), world, combat.Deps{AI: ai}, member("Iolo"))
	f.e.Begin()
	f.e.Step(' ')

	assert.Empty(t, hooks.calls)
	assert.Equal(t, []string{"Orc"}, fallback.asked)
}
