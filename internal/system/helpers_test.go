package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-dice-defense/internal/component"
	"go-dice-defense/internal/entity"
	"go-dice-defense/internal/event"
	"go-dice-defense/pkg/gridmap"
)

// fixedRand returns a scripted sequence of Intn results (each reduced mod n).
type fixedRand struct {
	ints []int
	i    int
	f    float64
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *fixedRand) Float64() float64 { return r.f }

type fixture struct {
	world      *entity.World
	grid       *gridmap.Grid
	path       *gridmap.Path
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path, err := gridmap.NewPath([]gridmap.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	require.NoError(t, err)

	f := &fixture{
		world:      entity.NewWorld(5, 3),
		grid:       gridmap.NewGrid(5, 3, 120, 340, 204),
		path:       path,
		dispatcher: event.NewDispatcher(),
	}
	f.world.Health = 10
	f.world.Economy.Currency = 100
	f.world.Economy.SpawnCost = 10
	return f
}

// record subscribes to types and collects their events in order.
func (f *fixture) record(types ...event.EventType) {
	for _, typ := range types {
		f.dispatcher.SubscribeFunc(typ, func(e event.Event) { f.events = append(f.events, e) })
	}
}

func (f *fixture) eventsOf(typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func (f *fixture) place(t *testing.T, slot int, typ component.DieType, level int) *component.Die {
	t.Helper()
	d := &component.Die{ID: f.world.NewEntity(), Type: typ, Level: level}
	require.NoError(t, f.world.Board.Place(slot, d))
	return d
}

func (f *fixture) enemyAt(x, y, health float64) *component.Enemy {
	e := &component.Enemy{
		ID:        f.world.NewEntity(),
		Pos:       gridmap.Point{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		Speed:     50,
		Reward:    11,
	}
	f.world.AddEnemy(e)
	return e
}
