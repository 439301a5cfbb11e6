package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/splendor/internal/fileutil"
	"github.com/lox/splendor/internal/randutil"
	"github.com/lox/splendor/internal/simulator"
)

type SimulateCmd struct {
	Games   int      `short:"n" default:"1000" help:"Number of games to simulate"`
	Seed    int64    `help:"RNG seed (0 for random, or the config seed)"`
	Workers int      `short:"w" help:"Games played concurrently (0 = GOMAXPROCS)"`
	Players []string `short:"p" help:"Players as name:strategy or strategy, replacing the config"`
	Out     string   `short:"o" help:"Write a JSON report to this file" type:"path"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	s, err := load(g, log.InfoLevel)
	if err != nil {
		return err
	}
	players, err := s.players(c.Players)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = s.config.Seed
	}
	seed = randutil.SeedOrNow(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("Starting simulation", "games", c.Games, "players", len(players), "seed", seed)
	sim := simulator.New(simulator.Config{
		Games:   c.Games,
		Seed:    seed,
		Workers: c.Workers,
		Players: players,
		Rules:   s.config.GameRules(),
		Cards:   s.cards,
		Nobles:  s.nobles,
		Clock:   quartz.NewReal(),
		Logger:  s.logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== RESULTS (seed %d) ===\n", seed)
	fmt.Print(stats.Summary())

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, stats, 0o644); err != nil {
			return err
		}
		s.logger.Info("Wrote report", "path", c.Out)
	}
	return nil
}
