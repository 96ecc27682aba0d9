package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stonehenge/config"
	"stonehenge/engine"
	"stonehenge/experiments"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/gamemaster"
	"stonehenge/searcher"
	"stonehenge/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: stonehenge <command> [flags]

commands:
  play         play against a computer strategy on the console
  match        run a round robin between strategies and store CSV records
  throughput   measure how fast the full searches visit states
  serve        serve the HTTP and websocket API
  init-config  write the default config file`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	args := os.Args[2:]
	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, args)
	case "match":
		err = runMatch(cfg, args)
	case "throughput":
		err = runThroughput(cfg, args)
	case "serve":
		err = runServe(cfg, args)
	case "init-config":
		var path string
		path, err = cfg.Save()
		if err == nil {
			log.Info().Msgf("wrote config to %s", path)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

func runPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	side := fs.Int("side", cfg.Game.SideLength, "side length of the board (1 to 5)")
	opponent := fs.String("opponent", cfg.Game.Opponent, "computer strategy: recursive, iterative, rough or random")
	p1Starts := fs.Bool("p1-starts", cfg.Game.P1Starts, "whether p1 makes the first move")
	humanFirst := fs.Bool("human-p1", true, "play as p1 rather than p2")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := game.NewStonehenge(*p1Starts, *side)
	if err != nil {
		return err
	}
	computer, err := searcher.New(*opponent, g, searcher.WithSeed(uint64(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	human := engine.Agent{Strategy: searcher.NewInteractive(g, os.Stdin, os.Stdout), Retries: cfg.Game.HumanRetries}
	machine := engine.Agent{Strategy: computer}
	p1, p2 := human, machine
	if !*humanFirst {
		p1, p2 = machine, human
	}

	fmt.Println(g.Instructions())
	fmt.Println(g.Current())
	printBoard := engine.WithUpdates(func(u engine.Update) {
		fmt.Printf("\n%s played %s\n%s\n", u.Player, u.Move, u.State)
	})
	winner, _, _ := engine.NewLocalEngine(g, p1, p2, printBoard).Run()

	switch winner {
	case "":
		fmt.Println("No winner.")
	case game.P1:
		fmt.Println("p1 wins!")
	default:
		fmt.Println("p2 wins!")
	}
	return nil
}

func runMatch(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	side := fs.Int("side", cfg.Game.SideLength, "side length of the board (1 to 5)")
	games := fs.Int("games", cfg.Experiments.Games, "games per match up")
	parallel := fs.Int("parallel", cfg.Experiments.Parallel, "match ups played at once")
	out := fs.String("out", cfg.Experiments.OutDir, "directory for the CSV records")
	name := fs.String("name", "round_robin", "experiment name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	agents := make([]metrics.AgentConfig, len(cfg.Experiments.Strategies))
	for i, strategy := range cfg.Experiments.Strategies {
		agents[i] = metrics.AgentConfig{ID: i + 1, Strategy: strategy, Seed: uint64(i + 1)}
	}
	_, err := experiments.RoundRobin{
		Name:       *name,
		SideLength: *side,
		Games:      *games,
		Agents:     agents,
		OutDir:     *out,
		Parallel:   *parallel,
	}.Run()
	return err
}

func runThroughput(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("throughput", flag.ExitOnError)
	out := fs.String("out", cfg.Experiments.OutDir, "directory for the CSV records")
	seed := fs.Uint64("seed", 1, "seed for the random openings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sides := []int{}
	for side := game.MinSideLength; side <= game.MaxSideLength; side++ {
		sides = append(sides, side)
	}
	_, err := experiments.RunThroughputExperiment(*out, sides, *seed)
	return err
}

func runServe(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := server.NewHub()
	s := server.New(gamemaster.NewGameMaster(), hub, server.Options{
		SideLength: cfg.Game.SideLength,
		Opponent:   cfg.Game.Opponent,
	})
	srv := &http.Server{Addr: *addr, Handler: s.Handler()}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return hub.Run(ctx)
	})
	eg.Go(func() error {
		log.Info().Msgf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
