package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/utils"

	"github.com/rs/zerolog"
)

// MergeSystem объединяет два одинаковых кубика в один кубик следующего уровня.
type MergeSystem struct {
	world           *entity.World
	rng             RandomSource
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	maxLevel        int
	refund          int
}

func NewMergeSystem(world *entity.World, rng RandomSource, eventDispatcher *event.Dispatcher, logger zerolog.Logger, maxLevel, refund int) *MergeSystem {
	return &MergeSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		maxLevel:        maxLevel,
		refund:          refund,
	}
}

// CanMerge reports whether src can be merged into dst.
func (s *MergeSystem) CanMerge(src, dst int) bool {
	if src == dst {
		return false
	}
	a, ok := s.world.Board.Get(src)
	if !ok {
		return false
	}
	b, ok := s.world.Board.Get(dst)
	if !ok {
		return false
	}
	return a.Type == b.Type && a.Level == b.Level && a.Level < s.maxLevel
}

// Merge removes the dice at src and dst and places a die of level L+1 with a
// freshly rolled type at dst. src ends up empty.
func (s *MergeSystem) Merge(src, dst int) (*component.Die, error) {
	if !s.CanMerge(src, dst) {
		return nil, ErrInvalidMergePair
	}
	a, _ := s.world.Board.Remove(src)
	if _, err := s.world.Board.Remove(dst); err != nil {
		return nil, err
	}

	merged := &component.Die{
		ID:    s.world.NewEntity(),
		Type:  utils.ChooseDieType(s.rng),
		Level: a.Level + 1,
	}
	if err := s.world.Board.Place(dst, merged); err != nil {
		return nil, err
	}
	s.world.Economy.Currency += s.refund

	s.logger.Debug().
		Int("from", src).
		Int("to", dst).
		Str("type", merged.Type.String()).
		Int("level", merged.Level).
		Msg("dice merged")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DiceMerged,
		Data: event.MergeData{From: src, To: dst, Result: *merged, Refund: s.refund},
	})
	return merged, nil
}
