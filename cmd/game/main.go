// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "dicedefense",
		Usage: "merge dice, hold the base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "dicedefense.yaml",
				Usage:   "path to config file (missing file = defaults)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or off",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 picks one from the clock",
			},
		},
		DefaultCommand: "play",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "open the game window",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "level", Usage: "start directly on level 1-3"},
					&cli.BoolFlag{Name: "lobby", Usage: "always start in the lobby"},
					&cli.BoolFlag{Name: "spectate", Usage: "serve read-only observers over websocket"},
				},
				Action: playAction,
			},
			{
				Name:  "simulate",
				Usage: "run a headless game with the built-in bot",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "ticks", Value: 36000, Usage: "simulation ticks at 60 per second"},
					&cli.IntFlag{Name: "level", Value: 1, Usage: "level 1-3"},
				},
				Action: simulateAction,
			},
			{
				Name:  "scores",
				Usage: "print the leaderboard",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 10, Usage: "rows to print"},
				},
				Action: scoresAction,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dicedefense: %v\n", err)
		os.Exit(1)
	}
}
