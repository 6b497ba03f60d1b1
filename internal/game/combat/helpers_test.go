package combat_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// fixedSrc always draws val reduced into range.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int { return f.val % n }

// seqSrc draws the queued values in order, then falls back to def.
type seqSrc struct {
	vals []int
	def  int
}

func (s *seqSrc) Intn(n int) int {
	if len(s.vals) == 0 {
		return s.def % n
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

type flash struct {
	at    grid.Coords
	tile  string
	ticks int
}

// recorder is a Presenter that keeps everything it is shown.
type recorder struct {
	messages []string
	flashes  []flash
	sounds   []combat.Sound
}

func (r *recorder) Message(text string) { r.messages = append(r.messages, text) }
func (r *recorder) Flash(at grid.Coords, tile string, ticks int) {
	r.flashes = append(r.flashes, flash{at, tile, ticks})
}
func (r *recorder) Sound(cue combat.Sound) { r.sounds = append(r.sounds, cue) }

func (r *recorder) said(text string) bool { return slices.Contains(r.messages, text) }

func (r *recorder) count(text string) int {
	n := 0
	for _, m := range r.messages {
		if m == text {
			n++
		}
	}
	return n
}

// flashedAt returns, in order, every cell tile was flashed on.
func (r *recorder) flashedAt(tile string) []grid.Coords {
	var at []grid.Coords
	for _, fl := range r.flashes {
		if fl.tile == tile {
			at = append(at, fl.at)
		}
	}
	return at
}

// scriptedInput answers prompts from queues; an empty queue cancels.
type scriptedInput struct {
	dirs    []grid.Direction
	choices []rune
}

func (s *scriptedInput) ReadDirection() grid.Direction {
	if len(s.dirs) == 0 {
		return grid.DirNone
	}
	d := s.dirs[0]
	s.dirs = s.dirs[1:]
	return d
}

func (s *scriptedInput) ReadChoice(valid string) rune {
	if len(s.choices) == 0 {
		return 0
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c
}

type placed struct {
	tile   string
	at     grid.Coords
	facing grid.Direction
}

// fakeWorld records every call the encounter makes on the outer game.
type fakeWorld struct {
	ground    *arena.Tile
	inCombat  bool
	exits     int
	finished  int
	removed   []string
	placed    []placed
	portals   []grid.Direction
	faced     []grid.Direction
	advanced  int
	deathWait int
	altars    []arena.Virtue
}

func (w *fakeWorld) ExitToParentMap() { w.exits++ }
func (w *fakeWorld) FinishTurn() { w.finished++ }
func (w *fakeWorld) InCombat() bool { return w.inCombat }
func (w *fakeWorld) RemoveObject(id string) { w.removed = append(w.removed, id) }
func (w *fakeWorld) PlaceObject(tile string, at grid.Coords, facing grid.Direction) string {
	w.placed = append(w.placed, placed{tile, at, facing})
	return tile
}
func (w *fakeWorld) GroundAt(grid.Coords) *arena.Tile { return w.ground }
func (w *fakeWorld) UsePortal(dir grid.Direction) { w.portals = append(w.portals, dir) }
func (w *fakeWorld) Face(dir grid.Direction) { w.faced = append(w.faced, dir) }
func (w *fakeWorld) Advance() { w.advanced++ }
func (w *fakeWorld) StartDeath(delay int) { w.deathWait = delay }
func (w *fakeWorld) EnterAltarRoom(v arena.Virtue) { w.altars = append(w.altars, v) }

// recordingAI returns a fixed action per creature name and logs who it was asked about.
type recordingAI struct {
	acts  map[string]combat.Action
	def   combat.Action
	asked []string
}

func (a *recordingAI) Decide(s combat.Situation, _ combat.Source) combat.Action {
	a.asked = append(a.asked, s.Self.Name())
	if act, ok := a.acts[s.Self.Name()]; ok {
		return act
	}
	return a.def
}

func grass(t testing.TB) *arena.Tile {
	t.Helper()
	tile, ok := arena.DefaultTileset().ByName("grass")
	require.True(t, ok)
	return tile
}

// openRows is an 11x11 field of grass.
func openRows() []string {
	rows := make([]string, 11)
	for i := range rows {
		rows[i] = "..........."
	}
	return rows
}

// openMap returns an open 11x11 map. Players start along row 9 and
// creatures along rows 1 and 2.
func openMap(t testing.TB) *arena.CombatMap {
	t.Helper()
	return buildMap(t, openRows())
}

func buildMap(t testing.TB, rows []string) *arena.CombatMap {
	t.Helper()
	var players [arena.MaxParty]grid.Coords
	for i := range players {
		players[i] = grid.Coords{X: i + 1, Y: 9}
	}
	var creatures [arena.MaxCreatures]grid.Coords
	for i := range creatures {
		if i < 11 {
			creatures[i] = grid.Coords{X: i, Y: 1}
		} else {
			creatures[i] = grid.Coords{X: i - 11, Y: 2}
		}
	}
	m, err := arena.NewCombatMap("test", arena.DefaultTileset(), rows, players, creatures)
	require.NoError(t, err)
	return m
}

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

// orc is a weak evil creature that never hits a defense-0 target with a
// zero draw.
func orc(t testing.TB) *creature.Template {
	return template(t, `
id: orc
name: Orc
tile: orc
alignment: evil
max_hp: 1
attack_bonus: 0
defense: 10
damage: 1d4
xp: 5
`)
}

func newWeapon(t testing.TB, w weapon.Weapon) *weapon.Weapon {
	t.Helper()
	require.NoError(t, w.Validate())
	return &w
}

func hands(t testing.TB) *weapon.Weapon {
	return newWeapon(t, weapon.Weapon{ID: weapon.HandsID, Name: "Hands", Range: 1, Damage: "1d2", HitTile: arena.TileHitFlash, MissTile: arena.TileMissFlash})
}

// member returns a healthy member whose attacks always hit.
func member(name string) *party.Member {
	return &party.Member{Name: name, Status: condition.Good, HP: 100, MaxHP: 100, Dex: 40}
}

type fixture struct {
	e     *combat.Encounter
	party *party.Party
	out   *recorder
	in    *scriptedInput
	world *fakeWorld
}

func newFixture(t testing.TB, m *arena.CombatMap, loc combat.Location, src combat.Source, cat *creature.Catalog, members ...*party.Member) *fixture {
	t.Helper()
	return newFixtureWith(t, m, loc, cat, combat.Deps{Source: src}, members...)
}

// newFixtureWith fills the collaborator fields deps leaves empty.
func newFixtureWith(t testing.TB, m *arena.CombatMap, loc combat.Location, cat *creature.Catalog, deps combat.Deps, members ...*party.Member) *fixture {
	t.Helper()
	f := &fixture{
		party: party.New(hands(t), 100, members...),
		out:   &recorder{},
		in:    &scriptedInput{},
		world: &fakeWorld{ground: grass(t)},
	}
	deps.Roster = f.party
	if deps.World == nil {
		deps.World = f.world
	}
	if deps.Presenter == nil {
		deps.Presenter = f.out
	}
	if deps.Input == nil {
		deps.Input = f.in
	}
	deps.Creatures = cat
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	f.e = combat.New(m, loc, deps)
	return f
}

func orcTrigger(tmpl *creature.Template) *combat.Trigger {
	return &combat.Trigger{ObjectID: "obj-orc", Template: tmpl, Coords: grid.Coords{X: 40, Y: 40}, Facing: grid.DirWest}
}
