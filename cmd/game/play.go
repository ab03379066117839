package main

import (
	"context"
	"time"

	"go-dice-defense/internal/audio"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/leaderboard"
	"go-dice-defense/internal/logging"
	"go-dice-defense/internal/spectate"
	"go-dice-defense/internal/state"
	"go-dice-defense/internal/ui"
	"go-dice-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"
)

type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.ShouldQuit() || a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings)
	dice, err := loadDice(settings)
	if err != nil {
		return err
	}
	fonts, err := ui.LoadFonts()
	if err != nil {
		return err
	}

	// Диспетчер живёт дольше сессий: подписчики ниже переживают рестарты.
	dispatcher := event.NewDispatcher()
	env := &state.Env{
		Settings:   settings,
		Dice:       dice,
		Dispatcher: dispatcher,
		Logger:     logger,
		Fonts:      fonts,
		Painter:    render.NewPainter(),
	}

	if settings.Leaderboard.Enabled {
		store, err := leaderboard.Open(settings.Leaderboard.Path, settings.Leaderboard.Size, logging.For(logger, "leaderboard"))
		if err != nil {
			logger.Warn().Err(err).Msg("leaderboard disabled")
		} else {
			defer store.Close()
			env.Recorder = leaderboard.NewRecorder(store, settings.Player.Name, logging.For(logger, "leaderboard"))
			env.Recorder.Attach(dispatcher)
		}
	}

	if settings.Audio.Enabled {
		sounds := audio.NewSoundManager(settings.Audio.Volume, logging.For(logger, "audio"))
		if err := sounds.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			defer sounds.Cleanup()
			sounds.Attach(dispatcher)
		}
	}

	if settings.Spectator.Enabled {
		hub := spectate.NewHub(logging.For(logger, "spectator"))
		srv, err := spectate.Listen(settings.Spectator.Addr, hub)
		if err != nil {
			return err
		}
		srvCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := srv.Serve(srvCtx); err != nil {
				logger.Error().Err(err).Msg("spectator server stopped")
			}
		}()
		env.Relay = spectate.NewRelay(hub, settings.Spectator.EveryN)
		env.Relay.Attach(dispatcher)
	}

	sm := state.NewStateMachine()
	if settings.StartFromGame {
		gs, err := state.NewGameState(sm, env, settings.Level)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewLobbyState(sm, env, settings.Level))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dice Defense")
	logger.Info().Int64("seed", settings.Seed).Msg("starting")
	return ebiten.RunGame(&AppGame{ctx: ctx, stateMachine: sm, lastUpdateTime: time.Now()})
}
