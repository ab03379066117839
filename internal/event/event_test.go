package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.SubscribeFunc(WaveStarted, func(Event) { order = append(order, "a") })
	d.SubscribeFunc(WaveStarted, func(Event) { order = append(order, "b") })
	d.SubscribeFunc(WaveCleared, func(Event) { order = append(order, "x") })

	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Number: 1}})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r1, r2 := &recorder{}, &recorder{}
	d.Subscribe(GameOver, r1)
	d.Subscribe(GameOver, r2)
	d.Unsubscribe(GameOver, r1)

	d.Dispatch(Event{Type: GameOver, Data: GameOverData{WavesSurvived: 3}})
	assert.Empty(t, r1.got)
	if assert.Len(t, r2.got, 1) {
		assert.Equal(t, 3, r2.got[0].Data.(GameOverData).WavesSurvived)
	}

	fl := d.SubscribeFunc(GameOver, func(Event) { t.Fatal("unsubscribed listener called") })
	d.Unsubscribe(GameOver, fl)
	d.Dispatch(Event{Type: GameOver})
	assert.Len(t, r2.got, 2)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: DieSpawned}) })
}
