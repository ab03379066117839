package state

import (
	"fmt"

	"go-dice-defense/internal/config"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/leaderboard"
	"go-dice-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// LobbyState — выбор уровня и таблица рекордов.
type LobbyState struct {
	sm       *StateMachine
	env      *Env
	selected int
	scores   []leaderboard.Entry
}

func NewLobbyState(sm *StateMachine, env *Env, selected int) *LobbyState {
	return &LobbyState{sm: sm, env: env, selected: selected}
}

func (l *LobbyState) Enter() {
	l.scores = l.env.TopScores()
}

func (l *LobbyState) Exit() {}

// Select выбирает уровень; индекс вне списка игнорируется.
func (l *LobbyState) Select(idx int) {
	if idx >= 0 && idx < len(defs.Levels) {
		l.selected = idx
	}
}

// Play переходит в игру на выбранном уровне.
func (l *LobbyState) Play() error {
	gs, err := NewGameState(l.sm, l.env, l.selected)
	if err != nil {
		return err
	}
	l.sm.SetState(gs)
	return nil
}

func (l *LobbyState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		l.sm.Quit()
		return
	}
	for i, key := range levelKeys {
		if inpututil.IsKeyJustPressed(key) {
			l.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := l.Play(); err != nil {
			l.env.Logger.Error().Err(err).Int("level", l.selected).Msg("failed to start game")
		}
	}
}

func (l *LobbyState) Draw(screen *ebiten.Image) {
	f := l.env.Fonts
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "DICE DEFENSE", f.Huge, config.ScreenWidth/2, 110, config.TextLightColor)

	y := 220
	for i, lvl := range defs.Levels {
		clr := config.TextDimColor
		label := fmt.Sprintf("%d  %s  x%.1f", i+1, lvl.Name, lvl.Difficulty)
		if i == l.selected {
			clr = config.TextLightColor
			label = "> " + label + " <"
		}
		ui.DrawCentered(screen, label, f.Title, config.ScreenWidth/2, y, clr)
		y += 44
	}
	ui.DrawCentered(screen, "1-3 choose level   Enter play   Esc quit", f.Small, config.ScreenWidth/2, y+10, config.TextDimColor)

	if len(l.scores) == 0 {
		return
	}
	y += 70
	ui.DrawCentered(screen, "Top runs", f.Regular, config.ScreenWidth/2, y, config.TextLightColor)
	for i, e := range l.scores {
		y += 24
		row := fmt.Sprintf("%2d. %-12s %-8s waves %d", i+1, e.Name, e.Level, e.Waves)
		b := text.BoundString(f.Small, row)
		text.Draw(screen, row, f.Small, config.ScreenWidth/2-b.Dx()/2, y, config.TextDimColor)
	}
}
