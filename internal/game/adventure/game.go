package adventure

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// ErrPartyDead is returned when an encounter is requested for a dead party.
var ErrPartyDead = errors.New("adventure: party is dead")

// ErrUnknownRoom is returned for a dungeon room index the registry lacks.
var ErrUnknownRoom = errors.New("adventure: unknown dungeon room")

// Odds, as 1-in-n, used between encounters.
const (
	ambushOdds = 4
	roomOdds   = 3
	campOdds   = 4
)

// restHeal is the hit points each living member recovers from an undisturbed rest.
const restHeal = 10

// Kind is the sort of encounter an Outcome records.
type Kind string

const (
	KindFight Kind = "fight"
	KindCamp  Kind = "camp"
	KindRoom  Kind = "room"
)

// Outcome is the record of one encounter.
type Outcome struct {
	Kind        Kind
	EncounterID string
	Map         string
	// Foe is the template id of the triggering creature, if any.
	Foe    string
	Result combat.Result
	Rounds int
	Steps  int
	// StepLimited is set when the encounter was ended for running too long.
	StepLimited bool
}

// Options wires a Game.
type Options struct {
	Registry  *arena.Registry
	Creatures *creature.Catalog
	// Auras is optional; without it CastAura always fails.
	Auras *condition.Registry
	// AI is the creature decision policy. Nil selects combat.BasicAI.
	AI       combat.CreatureAI
	Commands combat.Commands
	Source   dice.Source
	Logger   *zap.Logger
	// MaxSteps bounds the key presses per encounter.
	MaxSteps int
	Debug    bool
}

// Game strings encounters together for one party on one overworld. It is
// not safe for concurrent use.
type Game struct {
	opts   Options
	party  *party.Party
	world  *Overworld
	aura   *condition.Aura
	auto   *Autopilot
	out    *LogPresenter
	logger *zap.Logger
	log    []Outcome
}

// NewGame creates a game for p on w.
//
// Precondition: p and w are non-nil; opts.Registry, Creatures and Source are
// non-nil; opts.MaxSteps >= 1.
func NewGame(p *party.Party, w *Overworld, opts Options) *Game {
	if p == nil || w == nil {
		panic("adventure: NewGame precondition violated: nil party or overworld")
	}
	if opts.Registry == nil || opts.Creatures == nil || opts.Source == nil {
		panic("adventure: NewGame precondition violated: missing option")
	}
	if opts.MaxSteps < 1 {
		panic(fmt.Sprintf("adventure: NewGame precondition violated: max steps %d", opts.MaxSteps))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		opts:   opts,
		party:  p,
		world:  w,
		aura:   &condition.Aura{},
		auto:   NewAutopilot(),
		out:    NewLogPresenter(logger),
		logger: logger,
	}
}

// Party returns the party.
func (g *Game) Party() *party.Party { return g.party }

// World returns the overworld.
func (g *Game) World() *Overworld { return g.world }

// Aura returns the aura the party carries between encounters.
func (g *Game) Aura() *condition.Aura { return g.aura }

// Presenter returns the presenter every encounter reports to.
func (g *Game) Presenter() *LogPresenter { return g.out }

// Log returns every encounter outcome, oldest first.
func (g *Game) Log() []Outcome { return g.log }

// CastAura invokes the aura definition id on the party.
//
// Postcondition: Returns an error if no aura registry is wired or id is unknown.
func (g *Game) CastAura(id string) error {
	if g.opts.Auras == nil {
		return fmt.Errorf("adventure: no aura registry for %q", id)
	}
	def, err := g.opts.Auras.Invoke(id, g.aura)
	if err != nil {
		return err
	}
	if def.Message != "" {
		g.out.Message(def.Message)
	}
	g.logger.Debug("aura cast", zap.String("aura", def.ID), zap.Int("duration", def.Duration))
	return nil
}

// Fight runs an encounter against a creature of tmpl that walks up to the party.
//
// Postcondition: Returns ErrPartyDead for a dead party, or an error if no
// combat map is registered for the terrain.
func (g *Game) Fight(tmpl *creature.Template) (Outcome, error) {
	if g.party.IsDead() {
		return Outcome{}, ErrPartyDead
	}
	foe := g.world.SpawnCreature(tmpl)
	id := arena.MapForTile(arena.MapQuery{
		Ground: g.world.GroundAt(g.world.Position()).Name,
		Foe: &arena.MapFoe{
			PirateShip: tmpl.PirateShip || tmpl.Tile == arena.TilePirateShip,
			OverWater:  g.world.GroundAt(foe.Coords).Water,
		},
	})
	e, err := combat.NewFromRegistry(g.opts.Registry, id, g.location(combat.ContextWorld), g.deps())
	if err != nil {
		g.world.RemoveObject(foe.ID)
		return Outcome{}, fmt.Errorf("fighting %q: %w", tmpl.ID, err)
	}
	e.Init(&combat.Trigger{ObjectID: foe.ID, Template: tmpl, Coords: foe.Coords, Facing: foe.Facing})
	out := g.run(e, KindFight)
	out.Foe = tmpl.ID
	return g.record(out), nil
}

// Camp rests the party. Unless the horn aura scares them off, creatures may
// ambush the camp; an undisturbed rest wakes and heals the living members.
//
// Postcondition: Returns ErrPartyDead for a dead party.
func (g *Game) Camp() (Outcome, error) {
	if g.party.IsDead() {
		return Outcome{}, ErrPartyDead
	}
	var trigger *combat.Trigger
	if !g.aura.Is(condition.AuraHorn) && g.opts.Source.Intn(ambushOdds) == 0 {
		tmpl := g.randomCreature()
		foe := g.world.SpawnCreature(tmpl)
		trigger = &combat.Trigger{ObjectID: foe.ID, Template: tmpl, Coords: foe.Coords, Facing: foe.Facing}
	}

	id := arena.MapForTile(arena.MapQuery{Ground: g.world.GroundAt(g.world.Position()).Name})
	e, err := combat.NewFromRegistry(g.opts.Registry, id, g.location(combat.ContextWorld), g.deps())
	if err != nil {
		return Outcome{}, fmt.Errorf("camping: %w", err)
	}
	e.InitCamping(trigger)

	var out Outcome
	if trigger == nil {
		g.world.EnterCombat()
		e.Begin()
		e.End(true)
		out = g.outcome(e, KindCamp, 0)
	} else {
		out = g.run(e, KindCamp)
		out.Foe = trigger.Template.ID
	}
	if out.Result == combat.ResultRested {
		g.rest()
	}
	return g.record(out), nil
}

// EnterRoom runs the dungeon room at index, entered from the given side.
//
// Postcondition: Returns ErrPartyDead, a wrapped ErrUnknownRoom, or a wrapped
// arena.ErrInvalidDirection for a non-cardinal side.
func (g *Game) EnterRoom(index int, from grid.Direction) (Outcome, error) {
	if g.party.IsDead() {
		return Outcome{}, ErrPartyDead
	}
	room, ok := g.opts.Registry.Room(index)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownRoom, index)
	}
	e, err := combat.NewDungeonRoom(room, from, g.location(combat.ContextDungeon), g.deps())
	if err != nil {
		return Outcome{}, err
	}
	return g.record(g.run(e, KindRoom)), nil
}

// Run plays up to n encounters, stopping early if the party dies. Each is a
// camp, a dungeon room when any are registered, or a fight with a random creature.
func (g *Game) Run(n int) ([]Outcome, error) {
	rooms := g.opts.Registry.RoomIndexes()
	start := len(g.log)
	for range n {
		if g.party.IsDead() {
			break
		}
		var err error
		switch {
		case g.opts.Source.Intn(campOdds) == 0:
			_, err = g.Camp()
		case len(rooms) > 0 && g.opts.Source.Intn(roomOdds) == 0:
			index := rooms[g.opts.Source.Intn(len(rooms))]
			_, err = g.EnterRoom(index, grid.Cardinals[g.opts.Source.Intn(len(grid.Cardinals))])
		default:
			_, err = g.Fight(g.randomCreature())
		}
		if err != nil {
			return g.log[start:], err
		}
	}
	return g.log[start:], nil
}

// run drives e from Begin to its end, one autopilot key at a time. An
// encounter still going after MaxSteps keys is ended without karma.
func (g *Game) run(e *combat.Encounter, kind Kind) Outcome {
	g.world.EnterCombat()
	e.Begin()
	steps := 0
	for e.Phase() == combat.PhaseActive && steps < g.opts.MaxSteps {
		e.Step(g.auto.NextKey(e))
		steps++
	}
	limited := false
	if e.Phase() == combat.PhaseActive {
		g.logger.Warn("encounter step limit reached",
			zap.String("encounter", e.ID),
			zap.Int("steps", steps),
		)
		e.End(false)
		limited = true
	}
	out := g.outcome(e, kind, steps)
	out.StepLimited = limited
	return out
}

func (g *Game) outcome(e *combat.Encounter, kind Kind, steps int) Outcome {
	return Outcome{
		Kind:        kind,
		EncounterID: e.ID,
		Map:         e.Map().ID,
		Result:      e.Result(),
		Rounds:      e.Rounds(),
		Steps:       steps,
	}
}

func (g *Game) record(out Outcome) Outcome {
	g.log = append(g.log, out)
	g.logger.Info("encounter recorded",
		zap.String("kind", string(out.Kind)),
		zap.String("map", out.Map),
		zap.String("foe", out.Foe),
		zap.Stringer("result", out.Result),
		zap.Int("rounds", out.Rounds),
	)
	return out
}

func (g *Game) deps() combat.Deps {
	return combat.Deps{
		Roster:    g.party,
		World:     g.world,
		Presenter: g.out,
		Input:     g.auto,
		Source:    g.opts.Source,
		Creatures: g.opts.Creatures,
		AI:        g.opts.AI,
		Commands:  g.opts.Commands,
		Aura:      g.aura,
		Logger:    g.logger,
		Debug:     g.opts.Debug,
	}
}

func (g *Game) location(parent combat.Context) combat.Location {
	return combat.Location{Parent: parent, PartyCoords: g.world.Position()}
}

func (g *Game) randomCreature() *creature.Template {
	ids := g.opts.Creatures.IDs()
	tmpl, _ := g.opts.Creatures.ByID(ids[g.opts.Source.Intn(len(ids))])
	return tmpl
}

// rest wakes sleeping members and heals the living.
func (g *Game) rest() {
	for _, m := range g.party.Members() {
		if m.IsDead() {
			continue
		}
		m.WakeUp()
		m.HP = min(m.MaxHP, m.HP+restHeal)
	}
}
