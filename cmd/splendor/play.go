package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/splendor/internal/bot"
	"github.com/lox/splendor/internal/game"
	"github.com/lox/splendor/internal/gameid"
	"github.com/lox/splendor/internal/randutil"
)

type PlayCmd struct {
	Seed    int64    `help:"RNG seed (0 for random, or the config seed)"`
	Players []string `short:"p" help:"Players as name:strategy or strategy, replacing the config"`
	Quiet   bool     `short:"q" help:"Only print the final standings"`
}

func (c *PlayCmd) Run(g *Globals) error {
	s, err := load(g, log.WarnLevel)
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
	id := gameid.FromSeed(seed)
	logger := s.logger.With("game", id)

	rules := s.config.GameRules()
	board := game.NewBoard(s.cards, s.nobles, len(players), rules, randutil.New(seed))
	seats := make([]game.Seat, len(players))
	for i, p := range players {
		agent, err := bot.New(p.Strategy, randutil.New(randutil.Derive(seed, i+1)), logger)
		if err != nil {
			return err
		}
		seats[i] = game.Seat{Name: p.Label(), Agent: agent}
	}
	engine, err := game.NewEngine(board, seats, logger)
	if err != nil {
		return err
	}

	out := newRenderer(g, os.Stdout)
	fmt.Printf("Game %s (seed %d)\n\n", id, seed)
	if !c.Quiet {
		fmt.Println(out.Board(board))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := engine.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if !c.Quiet {
		for _, rec := range engine.History() {
			fmt.Println(out.Turn(rec))
		}
		fmt.Println()
		fmt.Println(out.Board(board))
		for i, u := range engine.Users() {
			fmt.Print(out.User(seats[i].Name, u))
		}
		fmt.Println()
	}
	fmt.Print(out.Result(res))
	return nil
}
