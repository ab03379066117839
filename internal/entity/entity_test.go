package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-dice-defense/internal/component"
)

func TestBoardPlaceAndRemove(t *testing.T) {
	b := NewBoard(5, 3)
	require.Equal(t, 15, b.Size())
	assert.Len(t, b.EmptySlots(), 15)

	d := &component.Die{ID: 1, Type: component.DieSingle, Level: 1}
	require.NoError(t, b.Place(7, d))
	assert.Equal(t, 7, d.Slot)

	got, ok := b.Get(7)
	require.True(t, ok)
	assert.Same(t, d, got)
	assert.Equal(t, 1, b.Occupied())
	assert.NotContains(t, b.EmptySlots(), 7)

	err := b.Place(7, &component.Die{ID: 2})
	assert.ErrorIs(t, err, ErrSlotOccupied)

	removed, err := b.Remove(7)
	require.NoError(t, err)
	assert.Same(t, d, removed)
	_, ok = b.Get(7)
	assert.False(t, ok)
}

func TestBoardInvalidSlot(t *testing.T) {
	b := NewBoard(5, 3)
	assert.ErrorIs(t, b.Place(-1, &component.Die{}), ErrInvalidSlot)
	assert.ErrorIs(t, b.Place(15, &component.Die{}), ErrInvalidSlot)
	_, err := b.Remove(99)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	_, ok := b.Get(15)
	assert.False(t, ok)
}

func TestBoardFullAndDiceOrder(t *testing.T) {
	b := NewBoard(2, 2)
	for _, slot := range []int{3, 0, 2, 1} {
		require.NoError(t, b.Place(slot, &component.Die{Level: slot + 1}))
	}
	assert.True(t, b.IsFull())
	assert.Empty(t, b.EmptySlots())

	dice := b.Dice()
	require.Len(t, dice, 4)
	for i, d := range dice {
		assert.Equal(t, i, d.Slot)
	}

	b.Clear()
	assert.Zero(t, b.Occupied())
}

func TestWorldEntityIDsAreUnique(t *testing.T) {
	w := NewWorld(5, 3)
	a, b := w.NewEntity(), w.NewEntity()
	assert.NotEqual(t, a, b)
	assert.Equal(t, -1, w.Selected)
	assert.Equal(t, component.WaveIdle, w.Wave.Phase)
}

func TestWorldSweep(t *testing.T) {
	w := NewWorld(5, 3)
	alive := &component.Enemy{ID: 1, Health: 10}
	dead := &component.Enemy{ID: 2, Dead: true}
	reached := &component.Enemy{ID: 3, Reached: true}
	alive2 := &component.Enemy{ID: 4, Health: 5}
	for _, e := range []*component.Enemy{alive, dead, reached, alive2} {
		w.AddEnemy(e)
	}
	assert.Equal(t, 2, w.LiveEnemyCount())

	killed, got := w.Sweep()
	assert.Equal(t, []*component.Enemy{dead}, killed)
	assert.Equal(t, []*component.Enemy{reached}, got)
	assert.Equal(t, []*component.Enemy{alive, alive2}, w.Enemies)
	assert.Equal(t, w.Enemies, w.LiveEnemies())
}
