package state

import (
	"fmt"

	"go-dice-defense/internal/config"
	"go-dice-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог забега поверх замершего поля.
type GameOverState struct {
	sm    *StateMachine
	game  *GameState
	waves int
	rank  int
}

func NewGameOverState(sm *StateMachine, gs *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: gs}
}

func (s *GameOverState) Enter() {
	s.waves = s.game.game.WavesSurvived()
	if s.game.env.Recorder != nil {
		s.rank = s.game.env.Recorder.LastRank()
	}
	s.game.logger.Info().Int("waves", s.waves).Int("rank", s.rank).Msg("run finished")
}

func (s *GameOverState) Exit() {}

// Restart начинает уровень заново в том же игровом состоянии.
func (s *GameOverState) Restart() {
	s.game.game.Restart()
	s.sm.SetState(s.game)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Restart()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.game.ToLobby()
		return
	}
	// после конца игры обновляются только визуальные эффекты
	s.game.step(deltaTime)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	f := s.game.env.Fonts
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GAME OVER", f.Huge, cx, cy-80, config.WarnTextColor)
	ui.DrawCentered(screen, fmt.Sprintf("Waves survived: %d", s.waves), f.Title, cx, cy-10, config.TextLightColor)
	if s.rank > 0 {
		ui.DrawCentered(screen, fmt.Sprintf("Leaderboard rank #%d", s.rank), f.Regular, cx, cy+30, config.TextLightColor)
	}
	ui.DrawCentered(screen, "R restart   Esc lobby", f.Small, cx, cy+70, config.TextDimColor)
}
