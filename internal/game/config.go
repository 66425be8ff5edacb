/*
Package game
File: config.go
Description:
    Loads the static catalog configuration from 'catalog.yaml'.
    The file carries the game balance tuning plus the upgrade catalog.
    When the file is absent the built-in defaults are used, so the server
    always boots with a playable economy.
*/

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration struct, mapping to the entire
// 'catalog.yaml' file.
type Config struct {
	Balance  GameBalance `yaml:"game_balance"`
	Upgrades []Upgrade   `yaml:"upgrades"`
}

// DefaultConfig returns the built-in balance tuning and upgrade catalog.
func DefaultConfig() *Config {
	return &Config{
		Balance: GameBalance{
			ClickBase:         1.0,
			ClickPPSShare:     0.1,
			CostGrowth:        1.15,
			FeverThreshold:    20,
			FeverStartMult:    2.0,
			FeverStep:         0.1,
			FeverMaxMult:      5.0,
			ComboDecayMs:      2000,
			StrokeValue:       0.5,
			StrokeMinDistance: 20,
			StrokeMinGapMs:    50,
			PettingCap:        500,
			PettingWindowSec:  300,
			HistoryLimit:      30,
			AnnotationTTLMs:   1000,
			OracleCosts: OracleCosts{
				Wisdom: 50,
				Name:   200,
				Story:  500,
			},
		},
		Upgrades: []Upgrade{
			{ID: "clover_leaf", Name: "Lucky Clover", Description: "A three-leaf clover found in the garden.", Icon: "🍀", BaseCost: 15, CPS: 0.5},
			{ID: "wood_bowl", Name: "Wooden Bowl", Description: "Rustic dining ware.", Icon: "🥣", BaseCost: 100, CPS: 3},
			{ID: "straw_hat", Name: "Straw Hat", Description: "Essential for sunny travels.", Icon: "👒", BaseCost: 500, CPS: 10},
			{ID: "frog_friend", Name: "Frog Friend", Description: "A travel companion who brings gifts.", Icon: "🐸", BaseCost: 2000, CPS: 40},
			{ID: "tree_house", Name: "Tree House", Description: "A cozy home high in the branches.", Icon: "🌳", BaseCost: 10000, CPS: 150},
			{ID: "hot_spring", Name: "Hot Spring", Description: "Relaxing natural onsen.", Icon: "♨️", BaseCost: 50000, CPS: 500},
		},
	}
}

// LoadConfig reads the catalog file at path and fills any missing tuning
// values from the defaults. A missing file is not an error: the defaults
// are returned as-is.
func LoadConfig(path string) (*Config, error) {
	def := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	// Fill gaps so a partial file still yields a complete balance sheet.
	if cfg.Balance.ClickBase == 0 {
		cfg.Balance.ClickBase = def.Balance.ClickBase
	}
	if cfg.Balance.ClickPPSShare == 0 {
		cfg.Balance.ClickPPSShare = def.Balance.ClickPPSShare
	}
	if cfg.Balance.CostGrowth == 0 {
		cfg.Balance.CostGrowth = def.Balance.CostGrowth
	}
	if cfg.Balance.FeverThreshold == 0 {
		cfg.Balance.FeverThreshold = def.Balance.FeverThreshold
	}
	if cfg.Balance.FeverStartMult == 0 {
		cfg.Balance.FeverStartMult = def.Balance.FeverStartMult
	}
	if cfg.Balance.FeverStep == 0 {
		cfg.Balance.FeverStep = def.Balance.FeverStep
	}
	if cfg.Balance.FeverMaxMult == 0 {
		cfg.Balance.FeverMaxMult = def.Balance.FeverMaxMult
	}
	if cfg.Balance.ComboDecayMs == 0 {
		cfg.Balance.ComboDecayMs = def.Balance.ComboDecayMs
	}
	if cfg.Balance.StrokeValue == 0 {
		cfg.Balance.StrokeValue = def.Balance.StrokeValue
	}
	if cfg.Balance.StrokeMinDistance == 0 {
		cfg.Balance.StrokeMinDistance = def.Balance.StrokeMinDistance
	}
	if cfg.Balance.StrokeMinGapMs == 0 {
		cfg.Balance.StrokeMinGapMs = def.Balance.StrokeMinGapMs
	}
	if cfg.Balance.PettingCap == 0 {
		cfg.Balance.PettingCap = def.Balance.PettingCap
	}
	if cfg.Balance.PettingWindowSec == 0 {
		cfg.Balance.PettingWindowSec = def.Balance.PettingWindowSec
	}
	if cfg.Balance.HistoryLimit == 0 {
		cfg.Balance.HistoryLimit = def.Balance.HistoryLimit
	}
	if cfg.Balance.AnnotationTTLMs == 0 {
		cfg.Balance.AnnotationTTLMs = def.Balance.AnnotationTTLMs
	}
	if cfg.Balance.OracleCosts == (OracleCosts{}) {
		cfg.Balance.OracleCosts = def.Balance.OracleCosts
	}
	if len(cfg.Upgrades) == 0 {
		cfg.Upgrades = def.Upgrades
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the catalog describes a sane economy.
func (c *Config) Validate() error {
	if c.Balance.CostGrowth <= 1.0 {
		return fmt.Errorf("game_balance.cost_growth must be greater than 1.0")
	}
	seen := make(map[string]bool, len(c.Upgrades))
	for _, u := range c.Upgrades {
		if u.ID == "" {
			return fmt.Errorf("upgrade with empty id")
		}
		if seen[u.ID] {
			return fmt.Errorf("duplicate upgrade id %q", u.ID)
		}
		seen[u.ID] = true
		if u.BaseCost <= 0 {
			return fmt.Errorf("upgrade %s: base_cost must be positive", u.ID)
		}
		if u.CPS <= 0 {
			return fmt.Errorf("upgrade %s: cps must be positive", u.ID)
		}
	}
	return nil
}
