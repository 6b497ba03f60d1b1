package adventure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// fixedSrc always draws val reduced into range.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int { return f.val % n }

const orcYAML = `
id: orc
name: Orc
tile: orc
alignment: evil
max_hp: 1
defense: 0
damage: 1d4
xp: 5
`

// ogreYAML survives any single blow from bare hands.
const ogreYAML = `
id: ogre
name: Ogre
tile: ogre
alignment: evil
max_hp: 200
defense: 0
damage: 1d4
xp: 20
`

func template(t testing.TB, yaml string) *creature.Template {
	t.Helper()
	tmpl, err := creature.LoadTemplateFromBytes([]byte(yaml))
	require.NoError(t, err)
	return tmpl
}

func catalog(t testing.TB, templates ...*creature.Template) *creature.Catalog {
	t.Helper()
	cat, err := creature.NewCatalog(templates)
	require.NoError(t, err)
	return cat
}

func hands(t testing.TB) *weapon.Weapon {
	t.Helper()
	w := &weapon.Weapon{ID: weapon.HandsID, Name: "Hands", Range: 1, Damage: "1d2", HitTile: arena.TileHitFlash, MissTile: arena.TileMissFlash}
	require.NoError(t, w.Validate())
	return w
}

// sturdy returns a party of one that cannot die to a few orc bites.
func sturdy(t testing.TB, name string) *party.Party {
	t.Helper()
	m := &party.Member{Name: name, Status: condition.Good, HP: 1000, MaxHP: 1000, Dex: 40}
	return party.New(hands(t), 100, m)
}

func openRows() []string {
	rows := make([]string, 11)
	for i := range rows {
		rows[i] = "..........."
	}
	return rows
}

// grassMap is an open map registered as "grass". Players start along row 9.
// The first creature start is right above the first player; the rest line
// the top two rows.
func grassMap(t testing.TB) *arena.CombatMap {
	t.Helper()
	var players [arena.MaxParty]grid.Coords
	for i := range players {
		players[i] = grid.Coords{X: i + 1, Y: 9}
	}
	var creatures [arena.MaxCreatures]grid.Coords
	creatures[0] = grid.Coords{X: 1, Y: 8}
	for i := 1; i < len(creatures); i++ {
		creatures[i] = grid.Coords{X: i % 11, Y: i / 11}
	}
	m, err := arena.NewCombatMap(arena.MapGrass, arena.DefaultTileset(), openRows(), players, creatures)
	require.NoError(t, err)
	return m
}

func registry(t testing.TB, rooms ...*arena.DungeonRoom) *arena.Registry {
	t.Helper()
	reg, err := arena.NewRegistry(arena.DefaultTileset(), []*arena.CombatMap{grassMap(t)}, rooms)
	require.NoError(t, err)
	return reg
}
