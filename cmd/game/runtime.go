package main

import (
	"fmt"
	"os"

	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/logging"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// levelIndex переводит номер уровня из CLI (с единицы) в индекс.
func levelIndex(n int) int {
	return n - 1
}

// loadSettings reads the config file and applies command-line overrides on top.
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	v := config.New()
	if cmd.IsSet("log-level") {
		v.Set("logLevel", cmd.String("log-level"))
	}
	if cmd.IsSet("seed") {
		v.Set("seed", cmd.Int64("seed"))
	}
	if cmd.IsSet("level") {
		v.Set("level", levelIndex(cmd.Int("level")))
	}
	if cmd.Bool("lobby") {
		v.Set("startFromGame", false)
	} else if cmd.IsSet("level") {
		v.Set("startFromGame", true)
	}
	if cmd.Bool("spectate") {
		v.Set("spectator.enabled", true)
	}
	return config.Load(v, cmd.String("config"))
}

func newLogger(s *config.Settings) zerolog.Logger {
	return logging.Setup(s.LogLevel, os.Stderr, false)
}

// loadDice returns the built-in table, overlaid by game.diceFile when set.
func loadDice(s *config.Settings) (defs.DiceLibrary, error) {
	if s.Game.DiceFile == "" {
		return defs.DefaultDice(), nil
	}
	lib, err := defs.LoadDiceDefinitions(s.Game.DiceFile)
	if err != nil {
		return nil, fmt.Errorf("dice file %s: %w", s.Game.DiceFile, err)
	}
	return lib, nil
}
