package adventure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/adventure"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// piloted starts an encounter on the grass map. With a trigger, a single
// creature stands right above the only player.
func piloted(t *testing.T, p *party.Party, trigger *combat.Trigger) (*combat.Encounter, *adventure.Autopilot) {
	t.Helper()
	auto := adventure.NewAutopilot()
	w := newWorld(t)
	w.EnterCombat()
	e := combat.New(grassMap(t), combat.Location{Parent: combat.ContextWorld}, combat.Deps{
		Roster:    p,
		World:     w,
		Presenter: adventure.NewLogPresenter(nil),
		Input:     auto,
		Source:    fixedSrc{0},
		Creatures: catalog(t, template(t, orcYAML)),
		Logger:    zap.NewNop(),
	})
	e.Init(trigger)
	e.Begin()
	require.Equal(t, combat.PhaseActive, e.Phase())
	return e, auto
}

func orcTrigger(t *testing.T) *combat.Trigger {
	return &combat.Trigger{ObjectID: "obj-orc", Template: template(t, orcYAML), Coords: grid.Coords{Y: -1}, Facing: grid.DirSouth}
}

func TestAutopilot_AttacksAdjacentCreature(t *testing.T) {
	e, auto := piloted(t, sturdy(t, "Iolo"), orcTrigger(t))

	assert.Equal(t, 'a', auto.NextKey(e))
	assert.Equal(t, grid.DirNorth, auto.ReadDirection())
	assert.Equal(t, grid.DirNone, auto.ReadDirection(), "the primed direction is used once")
}

func TestAutopilot_PrimesDistanceForChosenRange(t *testing.T) {
	p := sturdy(t, "Iolo")
	oil := &weapon.Weapon{ID: "flaming_oil", Name: "Flaming Oil", Range: 9, ChooseDistance: true, Damage: "1d8"}
	require.NoError(t, oil.Validate())
	p.Member(0).Weapon = oil

	e, auto := piloted(t, p, orcTrigger(t))
	require.Equal(t, 'a', auto.NextKey(e))
	assert.Equal(t, '1', auto.ReadChoice("123456789"))
	assert.Equal(t, 'x', auto.ReadChoice("xyz"), "the primed distance is used once")
}

func TestAutopilot_ExactRangeWeaponBacksOff(t *testing.T) {
	p := sturdy(t, "Shamino")
	halberd := &weapon.Weapon{ID: "halberd", Name: "Halberd", Range: 2, AbsoluteRange: true, Damage: "3d8"}
	require.NoError(t, halberd.Validate())
	p.Member(0).Weapon = halberd

	e, auto := piloted(t, p, orcTrigger(t))
	assert.Equal(t, combat.KeyFor(grid.DirSouth), auto.NextKey(e))

	e.Table().Creature(0).SetCoords(grid.Coords{X: 1, Y: 7})
	assert.Equal(t, 'a', auto.NextKey(e))
	assert.Equal(t, grid.DirNorth, auto.ReadDirection())
}

func TestAutopilot_ClosesInOnDistantCreature(t *testing.T) {
	e, auto := piloted(t, sturdy(t, "Iolo"), orcTrigger(t))
	e.Table().Creature(0).SetCoords(grid.Coords{X: 5, Y: 2})

	assert.Equal(t, combat.KeyFor(grid.DirNorth), auto.NextKey(e))
}

func TestAutopilot_OutOfReachOffLine(t *testing.T) {
	e, auto := piloted(t, sturdy(t, "Iolo"), orcTrigger(t))
	e.Table().Creature(0).SetCoords(grid.Coords{X: 2, Y: 8})

	// equal offsets step along the horizontal first
	assert.Equal(t, combat.KeyFor(grid.DirEast), auto.NextKey(e), "a diagonal creature is not in line")
}

func TestAutopilot_WalksToNearestEdgeWhenClear(t *testing.T) {
	e, auto := piloted(t, sturdy(t, "Iolo"), nil)

	// (1,9) is one step from both the west and south edges; west is tried first
	assert.Equal(t, combat.KeyFor(grid.DirWest), auto.NextKey(e))
}

func TestAutopilot_PrefersRecordedExit(t *testing.T) {
	e, auto := piloted(t, sturdy(t, "Iolo"), nil)
	require.NoError(t, e.SetExitDir(grid.DirEast))

	assert.Equal(t, combat.KeyFor(grid.DirEast), auto.NextKey(e))
}

func TestAutopilot_ReadChoiceDefaults(t *testing.T) {
	auto := adventure.NewAutopilot()
	assert.Equal(t, rune(0), auto.ReadChoice(""))
	assert.Equal(t, 'y', auto.ReadChoice("yn"))
	assert.Equal(t, grid.DirNone, auto.ReadDirection())
}

func TestAutopilot_SatisfiesInput(t *testing.T) {
	var _ combat.Input = adventure.NewAutopilot()
}
