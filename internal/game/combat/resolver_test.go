package combat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/combat/mocks"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// shooter is a ranged gazer whose missiles land as hitTile.
func shooter(t *testing.T, hitTile, extra string) *creature.Template {
	return template(t, fmt.Sprintf(`
id: gazer
name: Gazer
tile: gazer
max_hp: 50
damage: 1d4
ranged: true
range: 5
hit_tile: %s
miss_tile: miss_flash
%s`, hitTile, extra))
}

// rangedRoom puts the gazer at (5,5) with target standing at at and Dupre
// out of reach in the far corner. Every creature turn is a ranged attack.
func rangedRoom(t *testing.T, tmpl *creature.Template, src combat.Source, target *party.Member, at grid.Coords) *fixture {
	t.Helper()
	room := loadRoom(t, roomYAML(1, []grid.Coords{at, {X: 10, Y: 10}},
		roomCreature{"gazer", grid.Coords{X: 5, Y: 5}}))
	f := newFixtureWith(t, room.Map, dungeon, catalog(t, tmpl),
		combat.Deps{Source: src, AI: &recordingAI{def: combat.ActRanged}}, target, member("Dupre"))
	require.NoError(t, f.e.InitDungeonRoom(room, grid.DirNorth))
	f.e.Begin()
	return f
}

// playRound passes both members' turns so the creatures act once.
func playRound(f *fixture) {
	f.e.Step(' ')
	f.e.Step(' ')
}

// guarded returns a member no melee attack could hit.
func guarded(name string) *party.Member {
	m := member(name)
	m.Defense = 255
	return m
}

func TestRangedAttack_DamagingMissilesNeverMiss(t *testing.T) {
	tests := []struct {
		hitTile string
		want    string
	}{
		{arena.TileEnergy, "Iolo Electrified!"},
		{arena.TileFireField, "Iolo Fiery Hit!"},
		{"lava", "Iolo Lava Hit!"},
		{arena.TileMagicFlash, "Iolo Magical Hit!"},
		{arena.TileHitFlash, "Iolo Hit!"},
	}
	for _, tt := range tests {
		t.Run(tt.hitTile, func(t *testing.T) {
			iolo := guarded("Iolo")
			f := rangedRoom(t, shooter(t, tt.hitTile, ""), fixedSrc{2}, iolo, grid.Coords{X: 5, Y: 9})
			playRound(f)

			assert.True(t, f.out.said(tt.want))
			// 1d4 rolls 3 on a draw of 2
			assert.Equal(t, 97, iolo.HP)
			assert.Contains(t, f.out.flashedAt(tt.hitTile), grid.Coords{X: 5, Y: 9})
		})
	}
}

func TestRangedAttack_StatusMissiles(t *testing.T) {
	tests := []struct {
		name    string
		hitTile string
		src     int
		before  condition.Status
		said    string
		after   condition.Status
		sound   combat.Sound
	}{
		{"sleep takes", arena.TileSleep, 2, condition.Good, "Iolo Slept!", condition.Sleeping, combat.SoundSleep},
		{"sleep roll fails", arena.TileSleep, 3, condition.Good, "", condition.Good, combat.SoundSleep},
		{"poison takes", arena.TilePoison, 2, condition.Good, "Iolo Poisoned!", condition.Poisoned, combat.SoundPoison},
		{"already poisoned", arena.TilePoison, 2, condition.Poisoned, "", condition.Poisoned, combat.SoundPoison},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iolo := guarded("Iolo")
			iolo.Status = tt.before
			f := rangedRoom(t, shooter(t, tt.hitTile, ""), fixedSrc{tt.src}, iolo, grid.Coords{X: 5, Y: 9})
			playRound(f)

			assert.Equal(t, tt.after, iolo.Status)
			if tt.said != "" {
				assert.True(t, f.out.said(tt.said))
				assert.Contains(t, f.out.sounds, tt.sound)
			} else {
				assert.NotContains(t, f.out.sounds, tt.sound)
			}
			assert.Contains(t, f.out.flashedAt(tt.hitTile), grid.Coords{X: 5, Y: 9}, "the missile still lands")
		})
	}
}

func TestRangedAttack_SleeperIsNotSleptAgain(t *testing.T) {
	iolo := guarded("Iolo")
	f := rangedRoom(t, shooter(t, arena.TileSleep, ""), fixedSrc{2}, iolo, grid.Coords{X: 5, Y: 9})
	playRound(f)
	require.Equal(t, condition.Sleeping, iolo.Status)
	require.Equal(t, 1, f.e.Focus())

	// Iolo sleeps through the next round, so only Dupre passes
	f.e.Step(' ')
	assert.Equal(t, condition.Sleeping, iolo.Status)
	assert.Equal(t, 2, f.e.Rounds())
	assert.Equal(t, 1, f.out.count("Iolo Slept!"))
}

func TestRangedMiss(t *testing.T) {
	// Iolo is off the gazer's column, so the missile flies south past him.
	off := grid.Coords{X: 7, Y: 9}
	end := grid.Coords{X: 5, Y: 10}

	t.Run("leaves its missile where it landed", func(t *testing.T) {
		iolo := member("Iolo")
		f := rangedRoom(t, shooter(t, arena.TileFireField, "leaves_tile: true\n"), fixedSrc{2}, iolo, off)
		playRound(f)

		assert.Equal(t, 100, iolo.HP)
		assert.Equal(t, arena.TileFireField, f.e.Map().TileAt(end).Name)
		assert.Equal(t, []grid.Coords{{X: 5, Y: 6}, {X: 5, Y: 7}, {X: 5, Y: 8}, {X: 5, Y: 9}, end},
			f.out.flashedAt(arena.TileMissFlash))
	})

	t.Run("other missiles vanish", func(t *testing.T) {
		f := rangedRoom(t, shooter(t, arena.TileFireField, ""), fixedSrc{2}, member("Iolo"), off)
		playRound(f)
		assert.NotEqual(t, arena.TileFireField, f.e.Map().TileAt(end).Name)
	})
}

func TestAttack_ExactRangeWeapon(t *testing.T) {
	halberd := func(t *testing.T) *weapon.Weapon {
		return newWeapon(t, weapon.Weapon{ID: "halberd", Name: "Halberd", Range: 2, AbsoluteRange: true,
			Damage: "3d8", HitTile: "halberd_hit", MissTile: "halberd_miss"})
	}

	t.Run("passes over an adjacent creature", func(t *testing.T) {
		iolo := member("Iolo")
		iolo.Weapon = halberd(t)
		f := adjacentOrcFixture(t, orc(t), world, combat.Deps{}, iolo)
		f.e.Begin()
		f.in.dirs = []grid.Direction{grid.DirNorth}
		f.e.Step('a')

		assert.True(t, f.out.said("Missed!"))
		assert.Len(t, f.e.Table().LiveCreatures(), 1)
		assert.Equal(t, []grid.Coords{{X: 1, Y: 7}}, f.out.flashedAt("halberd_miss"))
		assert.Empty(t, f.out.flashedAt("halberd_hit"))
	})

	t.Run("strikes at its exact range", func(t *testing.T) {
		iolo := member("Iolo")
		iolo.Weapon = halberd(t)
		f := adjacentOrcFixture(t, orc(t), world, combat.Deps{}, iolo)
		f.e.Begin()
		f.e.Table().Creature(0).SetCoords(grid.Coords{X: 1, Y: 7})
		f.in.dirs = []grid.Direction{grid.DirNorth}
		f.e.Step('a')

		assert.True(t, f.out.said("Orc Killed!"))
		assert.Contains(t, f.out.flashedAt("halberd_hit"), grid.Coords{X: 1, Y: 7})
	})
}

func TestAttack_ShowTravelFlashesEveryCell(t *testing.T) {
	tests := []struct {
		name   string
		travel bool
		want   []grid.Coords
	}{
		{"travel shown", true, []grid.Coords{{X: 2, Y: 9}, {X: 3, Y: 9}, {X: 4, Y: 9}, {X: 4, Y: 9}}},
		{"landing only", false, []grid.Coords{{X: 4, Y: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iolo := member("Iolo")
			iolo.Weapon = newWeapon(t, weapon.Weapon{ID: "bolt", Name: "Bolt", Range: 3, ShowTravel: tt.travel,
				Damage: "1d4", MissTile: "bolt"})
			f := adjacentOrcFixture(t, orc(t), world, combat.Deps{}, iolo)
			f.e.Begin()
			f.in.dirs = []grid.Direction{grid.DirEast}
			f.e.Step('a')

			assert.True(t, f.out.said("Missed!"))
			assert.Equal(t, tt.want, f.out.flashedAt("bolt"))
		})
	}
}

func TestAttack_LeavesTileWhereItLands(t *testing.T) {
	iolo := member("Iolo")
	iolo.Weapon = newWeapon(t, weapon.Weapon{ID: "flaming_oil", Name: "Flaming Oil", Range: 3,
		Damage: "2d4", LeavesTile: arena.TileFireField, MissTile: arena.TileMissFlash})
	f := adjacentOrcFixture(t, orc(t), world, combat.Deps{}, iolo)
	f.e.Begin()
	f.in.dirs = []grid.Direction{grid.DirEast}
	f.e.Step('a')

	assert.Equal(t, arena.TileFireField, f.e.Map().TileAt(grid.Coords{X: 4, Y: 9}).Name)
	assert.NotEqual(t, arena.TileFireField, f.e.Map().TileAt(grid.Coords{X: 3, Y: 9}).Name)
}

func TestAttack_ReturningWeaponFlashesBackPath(t *testing.T) {
	iolo := member("Iolo")
	iolo.Weapon = newWeapon(t, weapon.Weapon{ID: "magic_axe", Name: "Magic Axe", Range: 3, Returns: true,
		Damage: "1d8", HitTile: "axe_hit", MissTile: "axe"})
	f := adjacentOrcFixture(t, orc(t), world, combat.Deps{}, iolo)
	f.e.Begin()
	f.e.Table().Creature(0).SetCoords(grid.Coords{X: 1, Y: 6})
	f.in.dirs = []grid.Direction{grid.DirNorth}
	f.e.Step('a')

	require.True(t, f.out.said("Orc Killed!"))
	assert.Equal(t, []grid.Coords{{X: 1, Y: 6}, {X: 1, Y: 7}, {X: 1, Y: 8}}, f.out.flashedAt("axe"))
	assert.Equal(t, "magic_axe", iolo.Weapon.ID)
}

func TestAttack_ChosenDistanceFromInput(t *testing.T) {
	oil := func(t *testing.T) *weapon.Weapon {
		return newWeapon(t, weapon.Weapon{ID: "flaming_oil", Name: "Flaming Oil", Range: 3, ChooseDistance: true, Damage: "2d4"})
	}

	t.Run("strikes at the chosen distance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		in := mocks.NewMockInput(ctrl)
		gomock.InOrder(
			in.EXPECT().ReadDirection().Return(grid.DirNorth),
			in.EXPECT().ReadChoice("123456789").Return('2'),
		)

		iolo := member("Iolo")
		iolo.Weapon = oil(t)
		f := adjacentOrcFixture(t, orc(t), world, combat.Deps{Input: in}, iolo)
		f.e.Begin()
		f.e.Table().Creature(0).SetCoords(grid.Coords{X: 1, Y: 7})
		f.e.Step('a')

		assert.True(t, f.out.said("Range: "))
		assert.True(t, f.out.said("2"))
		assert.True(t, f.out.said("Orc Killed!"))
	})

	t.Run("a distance beyond range cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		in := mocks.NewMockInput(ctrl)
		gomock.InOrder(
			in.EXPECT().ReadDirection().Return(grid.DirNorth),
			in.EXPECT().ReadChoice("123456789").Return('9'),
		)

		iolo := member("Iolo")
		iolo.Weapon = oil(t)
		f := adjacentOrcFixture(t, orc(t), world, combat.Deps{Input: in}, iolo)
		f.e.Begin()
		f.e.Step('a')

		assert.NotContains(t, f.out.sounds, combat.SoundPCAttack)
		assert.Len(t, f.e.Table().LiveCreatures(), 1)
	})
}
