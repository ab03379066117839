package system

import (
	"errors"

	"go-dice-defense/internal/entity"
)

// Ошибки пользовательских операций. Ни одна из них не меняет состояние игры.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoEmptySlot       = errors.New("no empty slot")
	ErrInvalidMergePair  = errors.New("invalid merge pair")
	ErrUpgradeMaxed      = errors.New("upgrade already at max level")
	ErrWaveInProgress    = errors.New("wave in progress")
	ErrGameOver          = errors.New("game over")
	ErrEmptySlot         = errors.New("slot is empty")

	ErrInvalidSlot  = entity.ErrInvalidSlot
	ErrSlotOccupied = entity.ErrSlotOccupied
)
