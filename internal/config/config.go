// Package config loads game and simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/splendor/internal/bot"
	"github.com/lox/splendor/internal/game"
)

// Config represents the complete configuration file
type Config struct {
	Cards   string         `hcl:"cards,optional"`  // card data file, embedded set when empty
	Nobles  string         `hcl:"nobles,optional"` // noble data file, embedded set when empty
	Seed    int64          `hcl:"seed,optional"`
	Rules   *RulesConfig   `hcl:"rules,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// RulesConfig mirrors game.Rules. Zero values take the default.
type RulesConfig struct {
	VictoryPoints     int `hcl:"victory_points,optional"`
	MaxTrials         int `hcl:"max_trials,optional"`
	MaxRounds         int `hcl:"max_rounds,optional"`
	BankCapacity      int `hcl:"bank_capacity,optional"`
	GoldCapacity      int `hcl:"gold_capacity,optional"`
	TokenLimit        int `hcl:"token_limit,optional"`
	HandLimit         int `hcl:"hand_limit,optional"`
	DoubleTakeMinimum int `hcl:"double_take_minimum,optional"`
	NobleCount        int `hcl:"noble_count,optional"`
}

// PlayerConfig defines one seat
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// Default returns the configuration used without a file: a heuristic
// player against a random one under the default rules.
func Default() *Config {
	c := &Config{
		Players: []PlayerConfig{
			{Name: "heuristic", Strategy: string(bot.Heuristic)},
			{Name: "random", Strategy: string(bot.Random)},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields Default. Relative data file
// paths are resolved against the file's directory.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(filename)
	for _, p := range []*string{&c.Cards, &c.Nobles} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return c, nil
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := game.DefaultRules()
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}
	r := c.Rules
	fill := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&r.VictoryPoints, def.VictoryPoints)
	fill(&r.MaxTrials, def.MaxTrials)
	fill(&r.MaxRounds, def.MaxRounds)
	fill(&r.BankCapacity, def.BankCapacity)
	fill(&r.GoldCapacity, def.GoldCapacity)
	fill(&r.TokenLimit, def.TokenLimit)
	fill(&r.HandLimit, def.HandLimit)
	fill(&r.DoubleTakeMinimum, def.DoubleTakeMinimum)

	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = string(bot.Random)
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if len(c.Players) == 0 {
		return errors.New("at least one player block is required")
	}
	seen := make(map[string]bool)
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("duplicate player %q", p.Name)
		}
		seen[p.Name] = true
		if _, err := bot.ParseStrategy(p.Strategy); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}
	return nil
}

// GameRules converts the rules block.
func (c *Config) GameRules() game.Rules {
	if c.Rules == nil {
		return game.DefaultRules()
	}
	r := c.Rules
	return game.Rules{
		VictoryPoints:     r.VictoryPoints,
		MaxTrials:         r.MaxTrials,
		MaxRounds:         r.MaxRounds,
		BankCapacity:      r.BankCapacity,
		GoldCapacity:      r.GoldCapacity,
		TokenLimit:        r.TokenLimit,
		HandLimit:         r.HandLimit,
		DoubleTakeMinimum: r.DoubleTakeMinimum,
		NobleCount:        r.NobleCount,
	}
}

// Strategies returns each player's parsed strategy in file order.
func (c *Config) Strategies() []bot.Strategy {
	out := make([]bot.Strategy, len(c.Players))
	for i, p := range c.Players {
		out[i], _ = bot.ParseStrategy(p.Strategy)
	}
	return out
}
