package state

import (
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/leaderboard"
	"go-dice-defense/internal/spectate"
	"go-dice-defense/internal/ui"
	"go-dice-defense/pkg/render"

	"github.com/rs/zerolog"
)

// Env — общие для всех состояний зависимости. Recorder и Relay необязательны.
type Env struct {
	Settings   *config.Settings
	Dice       defs.DiceLibrary
	Dispatcher *event.Dispatcher
	Logger     zerolog.Logger

	Fonts   *ui.Fonts
	Painter *render.Painter

	Recorder *leaderboard.Recorder
	Relay    *spectate.Relay
}

// TopScores returns the leaderboard, or nil when it is disabled.
func (e *Env) TopScores() []leaderboard.Entry {
	if e.Recorder == nil {
		return nil
	}
	entries, err := e.Recorder.Store().Top(e.Settings.Leaderboard.Size)
	if err != nil {
		e.Logger.Warn().Err(err).Msg("failed to load leaderboard")
		return nil
	}
	return entries
}
