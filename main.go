package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connectfour/config"
	"connectfour/env"
	"connectfour/envs"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/opponent"
	"connectfour/render"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", "play", "play or selfplay")
	rows := flag.Int("rows", cfg.Rows, "board rows")
	columns := flag.Int("columns", cfg.Columns, "board columns")
	winLength := flag.Int("win", cfg.WinLength, "aligned pieces needed to win")
	seed := flag.Uint64("seed", cfg.Seed, "random seed, 0 uses the clock")
	opponentName := flag.String("opponent", cfg.Opponent, "opponent: random, console, scripted, neural or remote")
	script := flag.String("script", cfg.Script, "scripted opponent columns, comma separated")
	renderMode := flag.String("render", cfg.RenderMode, "render mode for play")
	episodes := flag.Int("episodes", cfg.Episodes, "selfplay episode count")
	networkPath := flag.String("network", cfg.NetworkConfig, "neural opponent network JSON")
	remoteURL := flag.String("remote", cfg.RemoteURL, "remote opponent websocket URL")
	outDir := flag.String("out", cfg.OutDir, "selfplay output directory")
	verbose := flag.Bool("v", false, "log per-episode progress")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	factory, cleanup, err := buildFactory(*opponentName, *seed, *networkPath, *remoteURL, *script)
	if err != nil {
		log.Fatal().Err(err).Msg("building opponent")
	}
	defer cleanup()

	switch *mode {
	case "play":
		if err := play(factory, *rows, *columns, *winLength, *seed, render.Mode(*renderMode)); err != nil {
			log.Fatal().Err(err).Msg("play failed")
		}
	case "selfplay":
		_, _, err := experiments.Run(experiments.Config{
			Name:      "selfplay",
			Episodes:  *episodes,
			Rows:      *rows,
			Columns:   *columns,
			WinLength: *winLength,
			Seed:      *seed,
			Opponent:  *opponentName,
			Factory:   factory,
			OutDir:    *outDir,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("selfplay failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// buildFactory maps an opponent name to its factory plus whatever
// cleanup its transport needs.
func buildFactory(name string, seed uint64, networkPath, remoteURL, script string) (env.OpponentFactory, func(), error) {
	cleanup := func() {}
	switch name {
	case "random":
		return opponent.RandomFactory(seed), cleanup, nil
	case "console":
		return opponent.ConsoleFactory(os.Stdin, os.Stdout), cleanup, nil
	case "scripted":
		columns, err := parseScript(script)
		if err != nil {
			return nil, nil, err
		}
		return opponent.ScriptedFactory(columns...), cleanup, nil
	case "neural":
		cfg, err := opponent.LoadNetworkConfig(networkPath)
		if err != nil {
			return nil, nil, err
		}
		factory, err := opponent.NeuralFactory(cfg)
		if err != nil {
			return nil, nil, err
		}
		return factory, cleanup, nil
	case "remote":
		pick, closeConn, err := opponent.DialRemote(remoteURL)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			if err := closeConn(); err != nil {
				log.Warn().Err(err).Msg("closing remote opponent")
			}
		}
		return func() env.Opponent { return pick }, cleanup, nil
	default:
		return nil, nil, errors.Errorf("unknown opponent %q", name)
	}
}

// parseScript turns "3,3,0" into the column sequence a scripted
// opponent replays.
func parseScript(script string) ([]int, error) {
	if script == "" {
		return nil, errors.New("scripted opponent needs -script columns")
	}
	parts := strings.Split(script, ",")
	columns := make([]int, 0, len(parts))
	for _, part := range parts {
		column, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing script column %q", part)
		}
		columns = append(columns, column)
	}
	return columns, nil
}

// play runs one interactive episode: the terminal user is the agent,
// the configured opponent answers every move.
func play(factory env.OpponentFactory, rows, columns, winLength int, seed uint64, mode render.Mode) error {
	e, err := envs.Make("Connect4-v0", factory,
		env.WithRows(rows),
		env.WithColumns(columns),
		env.WithWinLength(winLength),
		env.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		return err
	}

	if _, err := e.Reset(); err != nil {
		return err
	}
	if e.Board().Moves() > 0 {
		fmt.Println("Opponent opens.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for e.State() == env.InProgress {
		if err := render.Render(os.Stdout, e.Board(), mode, render.DefaultSymbols); err != nil {
			return err
		}
		column, err := readColumn(scanner, columns)
		if err != nil {
			return err
		}

		if _, err := e.Step(column); err != nil {
			var illegal *game.IllegalMoveError
			if errors.As(err, &illegal) {
				fmt.Printf("%v, try again\n", err)
				continue
			}
			return err
		}
	}

	if err := render.Render(os.Stdout, e.Board(), mode, render.DefaultSymbols); err != nil {
		return err
	}
	switch e.Outcome() {
	case game.YellowWins:
		fmt.Println("You win!")
	case game.RedWins:
		fmt.Println("Opponent wins.")
	default:
		fmt.Println("Draw.")
	}
	return nil
}

func readColumn(scanner *bufio.Scanner, columns int) (int, error) {
	for {
		fmt.Printf("Your move [0-%d]: ", columns-1)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrap(err, "reading move")
			}
			return 0, errors.New("input closed")
		}
		column, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Println("Enter a column number.")
			continue
		}
		return column, nil
	}
}
