// Package combat implements the turn-based encounter engine: the combatant
// table, creature population, the targeting and attack resolver, the turn
// scheduler, and the encounter lifecycle.
package combat

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Phase is the encounter lifecycle state.
type Phase int

const (
	PhaseCreated Phase = iota
	PhaseActive
	PhaseEnding
	PhaseClosed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// TurnState is the scheduler state within an active encounter.
type TurnState int

const (
	AwaitingPlayer TurnState = iota
	AdvancingFocus
	RoundResolution
	Terminal
)

// String returns the state name.
func (s TurnState) String() string {
	switch s {
	case AwaitingPlayer:
		return "awaiting_player"
	case AdvancingFocus:
		return "advancing_focus"
	case RoundResolution:
		return "round_resolution"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("turn_state(%d)", int(s))
	}
}

// Result is how a closed encounter ended.
type Result int

const (
	ResultNone Result = iota
	ResultWon
	ResultFled
	ResultDied
	// ResultAborted is an encounter ended without karma, e.g. from the debug escape key.
	ResultAborted
	// ResultRested is a camping encounter that nothing interrupted.
	ResultRested
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWon:
		return "won"
	case ResultFled:
		return "fled"
	case ResultDied:
		return "died"
	case ResultAborted:
		return "aborted"
	case ResultRested:
		return "rested"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Deps are the collaborators an encounter is wired to.
type Deps struct {
	Roster    Roster
	World     World
	Presenter Presenter
	Input     Input
	Source    Source
	Creatures *creature.Catalog
	// AI decides creature actions. Nil selects BasicAI.
	AI CreatureAI
	// Commands handles cast, get chest, ready and use. Nil answers "Not here!".
	Commands Commands
	// Aura is the party's shared aura. Nil gives the encounter its own.
	Aura   *condition.Aura
	Logger *zap.Logger
	// Debug enables the escape, destroy-all, location and trigger keys.
	Debug bool
	// ActivePlayerKeys lets the digit keys lock the active player.
	ActivePlayerKeys bool
}

// Encounter is one combat session. It is not safe for concurrent use.
type Encounter struct {
	// ID identifies the encounter in logs.
	ID string

	roster    Roster
	world     World
	out       Presenter
	in        Input
	src       Source
	catalog   *creature.Catalog
	ai        CreatureAI
	commands  Commands
	aura      *condition.Aura
	logger    *zap.Logger
	debug     bool
	digitKeys bool

	m        *arena.CombatMap
	loc      Location
	table    Table
	spawns   [arena.MaxCreatures]*creature.Template
	triggers [arena.RoomTriggers]arena.Trigger
	trigger  *Trigger

	focus          int
	winOrLose      bool
	camping        bool
	forceStandard  bool
	showMessage    bool
	placeParty     bool
	placeCreatures bool
	exitDir        grid.Direction

	phase  Phase
	turn   TurnState
	result Result
	rounds int
}

// New creates an encounter on m.
//
// Precondition: m is non-nil; deps.Roster, World, Presenter, Input, Source
// and Creatures are non-nil.
// Postcondition: Phase() == PhaseCreated; the encounter must be initialized
// with Init, InitCamping or InitDungeonRoom before Begin.
func New(m *arena.CombatMap, loc Location, deps Deps) *Encounter {
	if m == nil {
		panic("combat: New precondition violated: nil map")
	}
	if deps.Roster == nil || deps.World == nil || deps.Presenter == nil ||
		deps.Input == nil || deps.Source == nil || deps.Creatures == nil {
		panic("combat: New precondition violated: missing collaborator")
	}
	e := &Encounter{
		ID:        uuid.NewString(),
		roster:    deps.Roster,
		world:     deps.World,
		out:       deps.Presenter,
		in:        deps.Input,
		src:       deps.Source,
		catalog:   deps.Creatures,
		ai:        deps.AI,
		commands:  deps.Commands,
		aura:      deps.Aura,
		debug:     deps.Debug,
		digitKeys: deps.ActivePlayerKeys,
		m:         m,
		loc:       loc,
		exitDir:   grid.DirNone,
	}
	if e.ai == nil {
		e.ai = BasicAI{}
	}
	if e.aura == nil {
		e.aura = &condition.Aura{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger.With(zap.String("encounter", e.ID), zap.String("map", m.ID))
	return e
}

// NewFromRegistry creates an encounter on a fresh copy of the combat map id.
//
// Postcondition: Returns an error wrapping arena.ErrUnknownMap for an unknown id.
func NewFromRegistry(reg *arena.Registry, id string, loc Location, deps Deps) (*Encounter, error) {
	m, err := reg.Map(id)
	if err != nil {
		return nil, err
	}
	return New(m, loc, deps), nil
}

// NewDungeonRoom creates an encounter for room entered from the given direction.
//
// Postcondition: Returns an error wrapping arena.ErrInvalidDirection for a
// non-cardinal direction.
func NewDungeonRoom(room *arena.DungeonRoom, from grid.Direction, loc Location, deps Deps) (*Encounter, error) {
	e := New(room.Map, loc, deps)
	if err := e.InitDungeonRoom(room, from); err != nil {
		return nil, err
	}
	return e, nil
}

// Init prepares a regular encounter. A nil trigger starts an encounter with
// no creatures.
func (e *Encounter) Init(trigger *Trigger) {
	e.trigger = trigger
	e.placeCreatures = trigger != nil
	e.placeParty = true
	e.winOrLose = true
	e.m.SetDungeonRoom(false)
	e.m.SetAltarRoom(arena.VirtueNone)
	e.showMessage = true
	e.camping = false
	e.table.reset()
	clear(e.spawns[:])
	e.triggers = [arena.RoomTriggers]arena.Trigger{}
	if trigger != nil {
		e.fillCreatureTable(trigger.Template)
	}
	e.focus = 0
}

// InitCamping prepares the staging encounter used while the party rests.
// A non-nil trigger is an ambush.
func (e *Encounter) InitCamping(trigger *Trigger) {
	e.Init(trigger)
	e.camping = true
	e.showMessage = trigger != nil
	e.winOrLose = trigger != nil
}

// InitDungeonRoom prepares the pre-authored encounter of room, entered from
// the given direction. Creatures come from the room's tile list; the party
// starts on the coordinates authored for the entry direction.
//
// Postcondition: Returns an error wrapping arena.ErrInvalidDirection for a
// non-cardinal direction, or an error for a creature tile the catalog does not
// draw; either way the encounter and map are left untouched.
func (e *Encounter) InitDungeonRoom(room *arena.DungeonRoom, from grid.Direction) error {
	starts, err := room.PartyStart(from)
	if err != nil {
		return fmt.Errorf("entering room %d: %w", room.Index, err)
	}
	var spawns [arena.MaxCreatures]*creature.Template
	for i, tile := range room.CreatureTiles {
		if tile == "" {
			continue
		}
		tmpl, ok := e.catalog.ByTile(tile)
		if !ok {
			return fmt.Errorf("entering room %d: no creature drawn as %q", room.Index, tile)
		}
		spawns[i] = tmpl
	}

	e.Init(nil)
	e.winOrLose = false
	e.m.SetDungeonRoom(true)
	e.exitDir = grid.DirNone
	e.triggers = room.Triggers

	if !e.loc.Abyss && room.Index == arena.AltarRoomIndex {
		switch x := e.loc.PartyCoords.X; {
		case x == 3:
			e.m.SetAltarRoom(arena.VirtueLove)
		case x <= 2:
			e.m.SetAltarRoom(arena.VirtueTruth)
		default:
			e.m.SetAltarRoom(arena.VirtueCourage)
		}
	}

	for i, tmpl := range spawns {
		if tmpl != nil {
			e.placeCreatures = true
			e.spawns[i] = tmpl
		}
		e.m.CreatureStart[i] = room.CreatureStart[i]
	}
	e.m.PlayerStart = starts
	return nil
}

// fillCreatureTable populates the spawn table from the triggering template.
func (e *Encounter) fillCreatureTable(tmpl *creature.Template) {
	standard := e.forceStandard || e.loc.Parent == ContextWorld || e.loc.Parent == ContextDungeon
	n := CreatureCount(tmpl, standard, e.roster.Size(), e.src)
	e.spawns = FillTable(tmpl, n, e.catalog, e.src)
}

// SetExitDir records the direction the party leaves a dungeon room by.
//
// Postcondition: Returns an error for directions other than DirNone or a cardinal.
func (e *Encounter) SetExitDir(d grid.Direction) error {
	if d != grid.DirNone && !d.IsCardinal() {
		return fmt.Errorf("combat: invalid exit direction %v", d)
	}
	e.exitDir = d
	return nil
}

// SetWinOrLose controls whether the encounter ends itself when one side is gone.
func (e *Encounter) SetWinOrLose(v bool) { e.winOrLose = v }

// ShowCombatMessage controls the "COMBAT" banner on Begin.
func (e *Encounter) ShowCombatMessage(v bool) { e.showMessage = v }

// ForceStandardEncounterSize makes population use the open-world rules.
// It takes effect on the next Init.
func (e *Encounter) ForceStandardEncounterSize(v bool) { e.forceStandard = v }

// Map returns the combat map.
func (e *Encounter) Map() *arena.CombatMap { return e.m }

// Table returns the combatant table.
func (e *Encounter) Table() *Table { return &e.table }

// Spawns returns the creature templates assigned to each slot before Begin.
func (e *Encounter) Spawns() [arena.MaxCreatures]*creature.Template { return e.spawns }

// Focus returns the player slot whose turn it is.
func (e *Encounter) Focus() int { return e.focus }

// CurrentPlayer returns the focused player, or nil.
func (e *Encounter) CurrentPlayer() *Combatant { return e.table.players[e.focus] }

// ExitDir returns the recorded dungeon-room exit direction.
func (e *Encounter) ExitDir() grid.Direction { return e.exitDir }

// IsWinOrLose reports whether the encounter ends itself.
func (e *Encounter) IsWinOrLose() bool { return e.winOrLose }

// IsCamping reports whether this is a camping encounter.
func (e *Encounter) IsCamping() bool { return e.camping }

// Trigger returns the creature that started the encounter, or nil.
func (e *Encounter) Trigger() *Trigger { return e.trigger }

// Location returns the parent-map description.
func (e *Encounter) Location() Location { return e.loc }

// Aura returns the aura shared with the party.
func (e *Encounter) Aura() *condition.Aura { return e.aura }

// Presenter returns the notification sink, for Commands implementations.
func (e *Encounter) Presenter() Presenter { return e.out }

// Phase returns the lifecycle state.
func (e *Encounter) Phase() Phase { return e.phase }

// TurnState returns the scheduler state.
func (e *Encounter) TurnState() TurnState { return e.turn }

// Result returns how the encounter ended, or ResultNone while it runs.
func (e *Encounter) Result() Result { return e.result }

// Rounds returns the number of completed rounds.
func (e *Encounter) Rounds() int { return e.rounds }

// isWon reports whether no creatures remain on the map.
func (e *Encounter) isWon() bool { return len(e.table.LiveCreatures()) == 0 }

// isLost reports whether no party members remain on the map.
func (e *Encounter) isLost() bool { return len(e.table.LivePlayers()) == 0 }
