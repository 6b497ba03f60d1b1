package adventure

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// LogPresenter writes combat messages to a logger at Debug and tallies the
// sound cues. Flashes are only counted.
type LogPresenter struct {
	logger   *zap.Logger
	messages int
	flashes  int
	sounds   map[combat.Sound]int
}

// NewLogPresenter returns a presenter writing to logger; nil discards.
func NewLogPresenter(logger *zap.Logger) *LogPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPresenter{logger: logger, sounds: make(map[combat.Sound]int)}
}

// Message implements combat.Presenter.
func (p *LogPresenter) Message(text string) {
	p.messages++
	p.logger.Debug("combat message", zap.String("text", text))
}

// Flash implements combat.Presenter.
func (p *LogPresenter) Flash(grid.Coords, string, int) { p.flashes++ }

// Sound implements combat.Presenter.
func (p *LogPresenter) Sound(cue combat.Sound) { p.sounds[cue]++ }

// Messages returns the number of messages shown.
func (p *LogPresenter) Messages() int { return p.messages }

// Flashes returns the number of flashes shown.
func (p *LogPresenter) Flashes() int { return p.flashes }

// Sounds returns how often cue played.
func (p *LogPresenter) Sounds(cue combat.Sound) int { return p.sounds[cue] }
