// Package config provides Viper-based configuration loading for the encounter simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the YAML and Lua content the simulator loads.
type ContentConfig struct {
	CreaturesDir string `mapstructure:"creatures_dir"`
	WeaponsDir   string `mapstructure:"weapons_dir"`
	ArenasDir    string `mapstructure:"arenas_dir"`
	RoomsDir     string `mapstructure:"rooms_dir"`
	AurasDir     string `mapstructure:"auras_dir"`
	// ScriptsDir holds one sub-directory of Lua files per creature template
	// id, plus an optional "global" directory shared by all of them.
	ScriptsDir string `mapstructure:"scripts_dir"`
	PartyFile  string `mapstructure:"party_file"`
}

// SimulationConfig controls a batch of simulated adventures.
type SimulationConfig struct {
	// Runs is the number of adventures in the batch.
	Runs int `mapstructure:"runs"`
	// Seed makes the batch reproducible; run i uses Seed+i. Zero draws from
	// the system's secure source instead.
	Seed uint64 `mapstructure:"seed"`
	// Workers bounds how many adventures run at once.
	Workers int `mapstructure:"workers"`
	// MaxSteps bounds the key presses one encounter may take before it is aborted.
	MaxSteps int `mapstructure:"max_steps"`
	// PartySize is how many members of the party file join the adventure.
	PartySize int `mapstructure:"party_size"`
	// Encounters is how many encounters each adventure attempts.
	Encounters int  `mapstructure:"encounters"`
	Debug      bool `mapstructure:"debug"`
	// ScriptedAI lets creatures with a script consult their Lua hook.
	ScriptedAI bool `mapstructure:"scripted_ai"`
	// InstructionLimit bounds the Lua instructions per hook call.
	InstructionLimit int `mapstructure:"instruction_limit"`
	// Aura is cast on the party at the start of every adventure.
	Aura string `mapstructure:"aura"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Content    ContentConfig    `mapstructure:"content"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	required := []struct {
		key, value string
	}{
		{"content.creatures_dir", c.CreaturesDir},
		{"content.weapons_dir", c.WeaponsDir},
		{"content.arenas_dir", c.ArenasDir},
		{"content.rooms_dir", c.RoomsDir},
		{"content.party_file", c.PartyFile},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, r.key+" must not be empty")
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Runs < 1 {
		errs = append(errs, fmt.Sprintf("simulation.runs must be >= 1, got %d", s.Runs))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 1, got %d", s.Workers))
	}
	if s.MaxSteps < 1 {
		errs = append(errs, fmt.Sprintf("simulation.max_steps must be >= 1, got %d", s.MaxSteps))
	}
	if s.PartySize < 1 || s.PartySize > 8 {
		errs = append(errs, fmt.Sprintf("simulation.party_size must be 1-8, got %d", s.PartySize))
	}
	if s.Encounters < 1 {
		errs = append(errs, fmt.Sprintf("simulation.encounters must be >= 1, got %d", s.Encounters))
	}
	if s.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("simulation.instruction_limit must be >= 0, got %d", s.InstructionLimit))
	}
	if _, err := condition.ParseAuraKind(s.Aura); err != nil {
		errs = append(errs, fmt.Sprintf("simulation.aura: %v", err))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	BindEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindEnv makes SKIRMISH_-prefixed environment variables override v, with
// dots in keys written as underscores (SKIRMISH_SIMULATION_RUNS).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.creatures_dir", "content/creatures")
	v.SetDefault("content.weapons_dir", "content/weapons")
	v.SetDefault("content.arenas_dir", "content/arenas")
	v.SetDefault("content.rooms_dir", "content/rooms")
	v.SetDefault("content.auras_dir", "content/auras")
	v.SetDefault("content.scripts_dir", "content/scripts/ai")
	v.SetDefault("content.party_file", "content/party.yaml")

	v.SetDefault("simulation.runs", 100)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.workers", 4)
	v.SetDefault("simulation.max_steps", 2000)
	v.SetDefault("simulation.party_size", 4)
	v.SetDefault("simulation.encounters", 3)
	v.SetDefault("simulation.debug", false)
	v.SetDefault("simulation.scripted_ai", true)
	v.SetDefault("simulation.instruction_limit", 100000)
	v.SetDefault("simulation.aura", "")
}
