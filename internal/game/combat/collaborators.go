package combat

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks Presenter,Input,World,Commands

// Source provides uniform random integers in [0, n).
// dice.Source satisfies this interface.
type Source interface {
	Intn(n int) int
}

// Sound is an audio cue emitted through the Presenter.
type Sound int

const (
	SoundPCAttack Sound = iota
	SoundNPCAttack
	SoundNPCStruck
	SoundPCStruck
	SoundPoison
	SoundSleep
	SoundBlocked
	SoundWalk
	SoundFlee
	SoundError
	SoundMagic
	SoundMusic
)

var soundNames = [...]string{
	"pc_attack", "npc_attack", "npc_struck", "pc_struck", "poison", "sleep",
	"blocked", "walk", "flee", "error", "magic", "music",
}

// String returns the cue name.
func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return fmt.Sprintf("sound(%d)", int(s))
	}
	return soundNames[s]
}

// Presenter receives fire-and-forget notifications. Implementations must not
// block; the encounter never depends on their completion.
type Presenter interface {
	Message(text string)
	// Flash shows tile over at for ticks animation frames.
	Flash(at grid.Coords, tile string, ticks int)
	Sound(cue Sound)
}

// Input answers the encounter's interactive prompts.
type Input interface {
	// ReadDirection returns the chosen cardinal direction, or grid.DirNone on cancel.
	ReadDirection() grid.Direction
	// ReadChoice returns one of the runes in valid, or 0 on cancel.
	ReadChoice(valid string) rune
}

// World is the outer map and turn system that owns the encounter while it runs.
type World interface {
	// ExitToParentMap leaves the combat map and returns to the map the
	// encounter was started from.
	ExitToParentMap()
	// FinishTurn completes the outer game turn.
	FinishTurn()
	// InCombat reports whether an encounter is the active mode.
	InCombat() bool
	RemoveObject(id string)
	// PlaceObject adds an object to the parent map and returns its id.
	PlaceObject(tile string, at grid.Coords, facing grid.Direction) string
	// GroundAt returns the parent map's ground tile at c, or nil off the map.
	GroundAt(c grid.Coords) *arena.Tile
	UsePortal(dir grid.Direction)
	Face(dir grid.Direction)
	// Advance moves the party one step in the direction it faces.
	Advance()
	StartDeath(delay int)
	EnterAltarRoom(v arena.Virtue)
}

// Roster is the persistent party the encounter borrows its players from.
// *party.Party satisfies this interface.
type Roster interface {
	Size() int
	Member(i int) *party.Member
	AdjustKarma(a party.KarmaAction)
	AdjustFood(delta int)
	EndTurn()
	IsDead() bool
	ActivePlayer() int
	SetActivePlayer(i int) bool
	LoseWeapon(i int) bool
}

// Commands handles the player commands that live outside the combat core.
// Each call receives the encounter and the focused slot; the turn ends when
// the call returns.
type Commands interface {
	CastSpell(e *Encounter, focus int)
	GetChest(e *Encounter, focus int)
	ReadyWeapon(e *Encounter, focus int)
	UseItem(e *Encounter, focus int)
}

// Context is the kind of map an encounter was started from.
type Context int

const (
	ContextWorld Context = iota
	ContextDungeon
	ContextTown
)

// String returns the context name.
func (c Context) String() string {
	switch c {
	case ContextWorld:
		return "world"
	case ContextDungeon:
		return "dungeon"
	case ContextTown:
		return "town"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// Location describes the parent map the encounter was entered from.
type Location struct {
	Parent Context
	// Abyss is set when the parent map is the Abyss, where mundane weapons fail.
	Abyss bool
	// PartyCoords is the party's position on the parent map.
	PartyCoords grid.Coords
}

// Trigger is the overworld creature that started the encounter.
type Trigger struct {
	// ObjectID identifies the creature's object on the parent map.
	ObjectID string
	Template *creature.Template
	Coords   grid.Coords
	Facing   grid.Direction
}
