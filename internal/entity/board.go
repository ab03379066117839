// internal/entity/board.go
package entity

import (
	"errors"

	"go-dice-defense/internal/component"
)

var (
	ErrInvalidSlot  = errors.New("slot out of range")
	ErrSlotOccupied = errors.New("slot occupied")
)

// Board — фиксированная сетка ячеек, в каждой не более одного кубика.
// Индекс ячейки: row*cols + col.
type Board struct {
	cols, rows int
	slots      []*component.Die
}

func NewBoard(cols, rows int) *Board {
	return &Board{
		cols:  cols,
		rows:  rows,
		slots: make([]*component.Die, cols*rows),
	}
}

func (b *Board) Cols() int { return b.cols }
func (b *Board) Rows() int { return b.rows }
func (b *Board) Size() int { return len(b.slots) }

// Valid reports whether slot is inside the board.
func (b *Board) Valid(slot int) bool {
	return slot >= 0 && slot < len(b.slots)
}

// Get returns the die at slot, if any.
func (b *Board) Get(slot int) (*component.Die, bool) {
	if !b.Valid(slot) || b.slots[slot] == nil {
		return nil, false
	}
	return b.slots[slot], true
}

// Place puts d at slot and updates d.Slot.
func (b *Board) Place(slot int, d *component.Die) error {
	if !b.Valid(slot) {
		return ErrInvalidSlot
	}
	if b.slots[slot] != nil {
		return ErrSlotOccupied
	}
	d.Slot = slot
	b.slots[slot] = d
	return nil
}

// Remove vacates slot and returns the die that was there (nil if empty).
func (b *Board) Remove(slot int) (*component.Die, error) {
	if !b.Valid(slot) {
		return nil, ErrInvalidSlot
	}
	d := b.slots[slot]
	b.slots[slot] = nil
	return d, nil
}

// EmptySlots returns the free slot indices in ascending order.
func (b *Board) EmptySlots() []int {
	var out []int
	for i, d := range b.slots {
		if d == nil {
			out = append(out, i)
		}
	}
	return out
}

// Occupied returns the number of dice on the board.
func (b *Board) Occupied() int {
	n := 0
	for _, d := range b.slots {
		if d != nil {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	return b.Occupied() == len(b.slots)
}

// Dice returns the dice in slot order.
func (b *Board) Dice() []*component.Die {
	out := make([]*component.Die, 0, len(b.slots))
	for _, d := range b.slots {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Clear removes every die.
func (b *Board) Clear() {
	for i := range b.slots {
		b.slots[i] = nil
	}
}
