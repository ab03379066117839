package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"

	"github.com/rs/zerolog"
)

// StateSystem следит за здоровьем базы и переводит сессию в GameOver.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	levelID         string
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher, logger zerolog.Logger, levelID string) *StateSystem {
	ss := &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		levelID:         levelID,
	}
	eventDispatcher.Subscribe(event.EnemyReachedBase, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyReachedBase {
		return
	}
	data, ok := e.Data.(event.EnemyData)
	if !ok {
		return
	}
	s.world.Health -= data.Damage
	if s.world.Health < 0 {
		s.world.Health = 0
	}
}

// Update switches to GameOver once base health is exhausted.
func (s *StateSystem) Update(float64) {
	if s.world.Phase == component.GameOver || s.world.Health > 0 {
		return
	}
	s.world.Phase = component.GameOver
	survived := s.WavesSurvived()

	s.logger.Info().Int("waves", survived).Str("level", s.levelID).Msg("game over")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{WavesSurvived: survived, Level: s.levelID, GameTime: s.world.GameTime},
	})
}

// WavesSurvived returns the number of fully cleared waves.
func (s *StateSystem) WavesSurvived() int {
	w := s.world.Wave
	if w.Phase == component.WaveCleared {
		return w.Number
	}
	return w.Number - 1
}
