package main

import (
	"context"
	"encoding/json"
	"os"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/defs"

	"github.com/urfave/cli/v3"
)

func simulateAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings)
	dice, err := loadDice(settings)
	if err != nil {
		return err
	}

	g, err := app.NewGame(app.Options{
		Settings: settings,
		Level:    defs.LevelByIndex(levelIndex(cmd.Int("level"))),
		Dice:     dice,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	res := app.Simulate(g, cmd.Int("ticks"))
	logger.Info().
		Str("level", g.Level.ID).
		Int64("seed", g.Rng.Seed()).
		Int("ticks", res.Ticks).
		Bool("over", res.Over).
		Int("waves", res.WavesSurvived).
		Float64("gameTime", res.GameTime).
		Msg("simulation finished")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
