// internal/state/game_state.go
package state

import (
	"time"

	"go-dice-defense/internal/app"
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const noticeDuration = 1.5

type binding func(g *GameState) error

// keyBindings — клавиши игрового экрана в порядке обработки. R, Esc и P
// обрабатываются отдельно, так как меняют состояние машины.
var keyBindings = []struct {
	key ebiten.Key
	fn  binding
}{
	{ebiten.KeySpace, func(g *GameState) error { _, err := g.game.SpawnRandom(); return err }},
	{ebiten.KeyTab, func(g *GameState) error { g.game.CycleTargetMode(); return nil }},
	{ebiten.KeyN, func(g *GameState) error { return g.game.ForceNextWave() }},
	{ebiten.KeyT, func(g *GameState) error { return g.game.TrashSelected() }},
	{ebiten.KeyQ, upgrade(component.UpgradeDamage)},
	{ebiten.KeyW, upgrade(component.UpgradeFireRate)},
	{ebiten.KeyE, upgrade(component.UpgradeRange)},
	{ebiten.Key1, speed(1)},
	{ebiten.Key2, speed(2)},
	{ebiten.Key3, speed(3)},
	{ebiten.Key4, speed(4)},
	{ebiten.Key5, speed(5)},
}

func bindingFor(key ebiten.Key) binding {
	for _, b := range keyBindings {
		if b.key == key {
			return b.fn
		}
	}
	return nil
}

func upgrade(k component.UpgradeKind) binding {
	return func(g *GameState) error { _, err := g.game.Upgrade(k); return err }
}

func speed(m int) binding {
	return func(g *GameState) error { g.game.SetSpeed(m); return nil }
}

// GameState — состояние игры
type GameState struct {
	sm     *StateMachine
	env    *Env
	game   *app.Game
	board  *ui.BoardRenderer
	hud    *ui.HUD
	snap   app.Snapshot
	logger zerolog.Logger

	levelIndex    int
	hover         int
	notice        string
	noticeTimer   float64
	lastClickTime time.Time
}

// NewGameState starts a session on the level with the given index.
func NewGameState(sm *StateMachine, env *Env, levelIndex int) (*GameState, error) {
	level := defs.LevelByIndex(levelIndex)
	g, err := app.NewGame(app.Options{
		Settings:   env.Settings,
		Level:      level,
		Dice:       env.Dice,
		Logger:     env.Logger,
		Dispatcher: env.Dispatcher,
	})
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		sm:         sm,
		env:        env,
		game:       g,
		board:      ui.NewBoardRenderer(env.Painter, env.Fonts),
		hud:        ui.NewHUD(env.Fonts, env.Painter),
		logger:     env.Logger.With().Str("state", "game").Logger(),
		levelIndex: levelIndex,
		hover:      -1,
	}
	gs.refresh(false)
	return gs, nil
}

func (g *GameState) Enter() {
	g.refresh(false)
}

func (g *GameState) Exit() {}

// Game returns the session driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}

// ToLobby закрывает сессию и возвращает в лобби.
func (g *GameState) ToLobby() {
	g.game.Close()
	g.sm.SetState(NewLobbyState(g.sm, g.env, g.levelIndex))
}

func (g *GameState) refresh(paused bool) {
	g.snap = g.game.Snapshot()
	g.hud.Sync(&g.snap, paused)
}

func (g *GameState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.ToLobby()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyF9):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Restart()
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.report(b.fn(g))
		}
	}

	x, y := ebiten.CursorPosition()
	g.hover = g.slotAt(x, y)
	if time.Since(g.lastClickTime) > config.ClickCooldown*time.Millisecond {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.lastClickTime = time.Now()
			if g.handleClick(x, y) {
				return
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.lastClickTime = time.Now()
			g.game.CancelSelection()
		}
	}

	g.step(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// step продвигает симуляцию и рассылает снимок наблюдателям.
func (g *GameState) step(deltaTime float64) {
	g.game.Update(deltaTime)
	g.refresh(false)
	if g.noticeTimer > 0 {
		g.noticeTimer -= deltaTime
	}
	if g.env.Relay != nil {
		g.env.Relay.Tick(func() interface{} { return g.snap })
	}
}

func (g *GameState) slotAt(x, y int) int {
	slot, ok := g.game.Grid.SlotAt(float64(x), float64(y))
	if !ok {
		return -1
	}
	return slot
}

// handleClick обрабатывает левый клик. Возвращает true, если сменилось состояние.
func (g *GameState) handleClick(x, y int) bool {
	if g.hud.Contains(x, y) {
		return g.perform(g.hud.HitTest(x, y))
	}
	if slot := g.slotAt(x, y); slot >= 0 {
		g.report(g.game.HandleSlotClick(slot))
	}
	return false
}

// perform выполняет действие HUD.
func (g *GameState) perform(a ui.Action) bool {
	if k, ok := a.UpgradeKind(); ok {
		_, err := g.game.Upgrade(k)
		g.report(err)
		return false
	}
	switch a {
	case ui.ActionSpawn:
		_, err := g.game.SpawnRandom()
		g.report(err)
	case ui.ActionTargetMode:
		g.game.CycleTargetMode()
	case ui.ActionTrash:
		g.report(g.game.TrashSelected())
	case ui.ActionSpeed:
		g.game.CycleSpeed()
	case ui.ActionForceWave:
		g.report(g.game.ForceNextWave())
	case ui.ActionPause:
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	}
	return false
}

// report показывает отказ игрока коротким сообщением.
func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	g.logger.Debug().Err(err).Msg("action rejected")
	g.notice = err.Error()
	g.noticeTimer = noticeDuration
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.board.Draw(screen, &g.snap, g.hover)
	x, y := ebiten.CursorPosition()
	g.hud.Draw(screen, &g.snap, x, y)
	if g.noticeTimer > 0 && g.notice != "" {
		ui.DrawCentered(screen, g.notice, g.env.Fonts.Regular, config.ScreenWidth/2,
			config.UpgradeButtonY-24, config.WarnTextColor)
	}
}
