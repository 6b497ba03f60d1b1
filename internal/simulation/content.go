// Package simulation loads the encounter content and plays batches of
// simulated adventures against it.
package simulation

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/party"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

// globalScripts is the scripts sub-directory shared by every creature.
const globalScripts = "global"

// Content is everything a batch reads but never modifies. It is safe to
// share across concurrent adventures.
type Content struct {
	Registry  *arena.Registry
	Creatures *creature.Catalog
	Weapons   *weapon.Catalog
	// Auras is nil when no aura directory is configured.
	Auras *condition.Registry
	Party *party.Spec
}

// LoadContent reads every content file named by cfg.
//
// Precondition: cfg has passed config validation.
// Postcondition: Returns fully loaded content or the first load error.
func LoadContent(cfg config.ContentConfig) (*Content, error) {
	reg, err := arena.LoadRegistry(cfg.ArenasDir, cfg.RoomsDir, arena.DefaultTileset())
	if err != nil {
		return nil, fmt.Errorf("loading arenas: %w", err)
	}
	creatures, err := creature.LoadCatalog(cfg.CreaturesDir)
	if err != nil {
		return nil, fmt.Errorf("loading creatures: %w", err)
	}
	weapons, err := weapon.LoadCatalog(cfg.WeaponsDir)
	if err != nil {
		return nil, fmt.Errorf("loading weapons: %w", err)
	}
	spec, err := party.LoadSpec(cfg.PartyFile)
	if err != nil {
		return nil, err
	}
	c := &Content{Registry: reg, Creatures: creatures, Weapons: weapons, Party: spec}
	if cfg.AurasDir != "" {
		if c.Auras, err = condition.LoadDirectory(cfg.AurasDir); err != nil {
			return nil, fmt.Errorf("loading auras: %w", err)
		}
	}
	return c, nil
}

// LoadScripts creates a scripting manager with one profile per creature
// template directory under dir. A "global" directory becomes the shared
// fallback profile. Directories named after no known template are skipped.
//
// Precondition: dir is a readable directory; creatures is non-nil.
// Postcondition: Returns the manager and the number of profiles loaded.
func LoadScripts(dir string, creatures *creature.Catalog, instLimit int, logger *zap.Logger) (*scripting.Manager, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("reading scripts dir %q: %w", dir, err)
	}
	mgr := scripting.NewManager(dice.NewLoggedRoller(dice.NewCryptoSource(), logger), logger)
	loaded := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if e.Name() == globalScripts {
			if err := mgr.LoadGlobal(path, instLimit); err != nil {
				mgr.Close()
				return nil, 0, err
			}
			loaded++
			continue
		}
		if _, ok := creatures.ByID(e.Name()); !ok {
			logger.Warn("skipping scripts for unknown creature", zap.String("dir", path))
			continue
		}
		if err := mgr.LoadProfile(e.Name(), path, instLimit); err != nil {
			mgr.Close()
			return nil, 0, err
		}
		loaded++
	}
	return mgr, loaded, nil
}

// auraFor returns the id of the aura definition of kind.
func (c *Content) auraFor(kind condition.AuraKind) (string, error) {
	if c.Auras == nil {
		return "", fmt.Errorf("simulation: aura %v requested but no auras are loaded", kind)
	}
	for _, def := range c.Auras.All() {
		if def.Kind == kind {
			return def.ID, nil
		}
	}
	return "", fmt.Errorf("simulation: no aura definition of kind %v", kind)
}
