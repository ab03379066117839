package system

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/defs"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/internal/utils"

	"github.com/rs/zerolog"
)

// EconomySystem управляет деньгами: покупка кубиков, улучшения, награды за убийства.
type EconomySystem struct {
	world           *entity.World
	rng             RandomSource
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
	costIncrement   int
}

func NewEconomySystem(world *entity.World, rng RandomSource, eventDispatcher *event.Dispatcher, logger zerolog.Logger, costIncrement int) *EconomySystem {
	s := &EconomySystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		costIncrement:   costIncrement,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func (s *EconomySystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if data, ok := e.Data.(event.EnemyData); ok && data.Reward > 0 {
		s.world.Economy.Currency += data.Reward
	}
}

// CanAfford reports whether the player has at least amount.
func (s *EconomySystem) CanAfford(amount int) bool {
	return s.world.Economy.Currency >= amount
}

// SpawnRandom buys a level-1 die into a uniformly random empty slot.
func (s *EconomySystem) SpawnRandom() (*component.Die, error) {
	if !s.CanAfford(s.world.Economy.SpawnCost) {
		return nil, ErrInsufficientFunds
	}
	empty := s.world.Board.EmptySlots()
	if len(empty) == 0 {
		return nil, ErrNoEmptySlot
	}
	return s.spawn(empty[s.rng.Intn(len(empty))])
}

// SpawnAt buys a level-1 die into the given slot.
func (s *EconomySystem) SpawnAt(slot int) (*component.Die, error) {
	if !s.CanAfford(s.world.Economy.SpawnCost) {
		return nil, ErrInsufficientFunds
	}
	if s.world.Board.IsFull() {
		return nil, ErrNoEmptySlot
	}
	if !s.world.Board.Valid(slot) {
		return nil, ErrInvalidSlot
	}
	if _, occupied := s.world.Board.Get(slot); occupied {
		return nil, ErrSlotOccupied
	}
	return s.spawn(slot)
}

func (s *EconomySystem) spawn(slot int) (*component.Die, error) {
	d := &component.Die{
		ID:    s.world.NewEntity(),
		Type:  utils.ChooseDieType(s.rng),
		Level: 1,
	}
	if err := s.world.Board.Place(slot, d); err != nil {
		return nil, err
	}

	cost := s.world.Economy.SpawnCost
	s.world.Economy.Currency -= cost
	s.world.Economy.SpawnCost += s.costIncrement

	s.logger.Debug().Int("slot", slot).Str("type", d.Type.String()).Int("cost", cost).Msg("die spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.DieSpawned, Data: event.DieData{Die: *d, Cost: cost}})
	return d, nil
}

// Upgrade raises one in-run upgrade by a level.
func (s *EconomySystem) Upgrade(kind component.UpgradeKind) (int, error) {
	level := s.world.Economy.Upgrades.Level(kind)
	cost, ok := defs.UpgradeCost(level)
	if !ok {
		return level, ErrUpgradeMaxed
	}
	if !s.CanAfford(cost) {
		return level, ErrInsufficientFunds
	}

	s.world.Economy.Currency -= cost
	s.world.Economy.Upgrades.Set(kind, level+1)

	s.logger.Debug().Str("kind", kind.String()).Int("level", level+1).Int("cost", cost).Msg("upgrade purchased")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UpgradePurchased,
		Data: event.UpgradeData{Kind: kind, Level: level + 1, Cost: cost},
	})
	return level + 1, nil
}

// Trash removes a die without refund.
func (s *EconomySystem) Trash(slot int) error {
	d, ok := s.world.Board.Get(slot)
	if !ok {
		if !s.world.Board.Valid(slot) {
			return ErrInvalidSlot
		}
		return ErrEmptySlot
	}
	if _, err := s.world.Board.Remove(slot); err != nil {
		return err
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.DieTrashed, Data: event.DieData{Die: *d}})
	return nil
}
