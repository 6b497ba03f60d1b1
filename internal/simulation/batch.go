package simulation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/adventure"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/observability"
)

// startGround is the overworld tile every adventure starts on.
const startGround = "grass"

// RunReport summarizes one adventure.
type RunReport struct {
	Run      int
	Seed     uint64
	Outcomes []adventure.Outcome
	// PartyDead is set when the adventure ended with the whole party dead.
	PartyDead bool
	Karma     int
	Food      int
}

// Summary aggregates a batch.
type Summary struct {
	Runs       int
	Encounters int
	// Results counts encounter outcomes by result name.
	Results     map[string]int
	PartyDeaths int
	StepLimited int
	Reports     []RunReport
}

// Batch plays many independent adventures over shared content.
type Batch struct {
	content *Content
	cfg     config.SimulationConfig
	ai      combat.CreatureAI
	aura    string
	logger  *zap.Logger
}

// NewBatch prepares a batch. A nil ai selects combat.BasicAI.
//
// Precondition: content is non-nil; cfg has passed config validation.
// Postcondition: Returns an error when cfg names an aura the content cannot cast.
func NewBatch(content *Content, cfg config.SimulationConfig, ai combat.CreatureAI, logger *zap.Logger) (*Batch, error) {
	if content == nil {
		panic("simulation: NewBatch precondition violated: nil content")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Batch{content: content, cfg: cfg, ai: ai, logger: logger}
	kind, err := condition.ParseAuraKind(cfg.Aura)
	if err != nil {
		return nil, err
	}
	if kind != condition.AuraNone {
		if b.aura, err = content.auraFor(kind); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Run plays cfg.Runs adventures on at most cfg.Workers goroutines.
//
// Postcondition: Returns a summary with one report per run in run order, or
// the first run error. Cancelling ctx stops runs that have not started.
func (b *Batch) Run(ctx context.Context) (Summary, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	var mu sync.Mutex
	reports := make([]RunReport, 0, b.cfg.Runs)
	for i := range b.cfg.Runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := b.play(i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			mu.Lock()
			reports = append(reports, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Run < reports[j].Run })
	return summarize(reports), nil
}

// play runs adventure i on its own party, world and random source.
func (b *Batch) play(i int) (RunReport, error) {
	var src dice.Source
	seed := uint64(0)
	if b.cfg.Seed != 0 {
		seed = b.cfg.Seed + uint64(i)
		src = dice.NewSeededSource(seed)
	} else {
		src = dice.NewCryptoSource()
	}
	logger := observability.RunLogger(b.logger, i, seed)

	p, err := b.content.Party.Build(b.content.Weapons, b.cfg.PartySize)
	if err != nil {
		return RunReport{}, err
	}
	world := adventure.NewOverworld(b.content.Registry.Tiles(), startGround, logger)
	game := adventure.NewGame(p, world, adventure.Options{
		Registry:  b.content.Registry,
		Creatures: b.content.Creatures,
		Auras:     b.content.Auras,
		AI:        b.ai,
		Source:    src,
		Logger:    logger,
		MaxSteps:  b.cfg.MaxSteps,
		Debug:     b.cfg.Debug,
	})
	if b.aura != "" {
		if err := game.CastAura(b.aura); err != nil {
			return RunReport{}, err
		}
	}

	outcomes, err := game.Run(b.cfg.Encounters)
	if err != nil {
		return RunReport{}, err
	}
	logger.Info("adventure finished",
		zap.Int("encounters", len(outcomes)),
		zap.Bool("party_dead", p.IsDead()),
		zap.Int("karma", p.Karma()),
	)
	return RunReport{
		Run:       i,
		Seed:      seed,
		Outcomes:  outcomes,
		PartyDead: p.IsDead(),
		Karma:     p.Karma(),
		Food:      p.Food(),
	}, nil
}

func summarize(reports []RunReport) Summary {
	s := Summary{Runs: len(reports), Results: make(map[string]int), Reports: reports}
	for _, r := range reports {
		if r.PartyDead {
			s.PartyDeaths++
		}
		for _, out := range r.Outcomes {
			s.Encounters++
			s.Results[out.Result.String()]++
			if out.StepLimited {
				s.StepLimited++
			}
		}
	}
	return s
}

// Fields renders the summary as log fields.
func (s Summary) Fields() []zap.Field {
	names := make([]string, 0, len(s.Results))
	for name := range s.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := []zap.Field{
		zap.Int("runs", s.Runs),
		zap.Int("encounters", s.Encounters),
		zap.Int("party_deaths", s.PartyDeaths),
		zap.Int("step_limited", s.StepLimited),
	}
	for _, name := range names {
		fields = append(fields, zap.Int("result_"+name, s.Results[name]))
	}
	return fields
}
