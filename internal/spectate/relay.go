package spectate

import (
	"go-dice-defense/internal/event"
)

// Relay forwards game events to the hub and throttles snapshot frames.
type Relay struct {
	hub    *Hub
	everyN int
	frame  int
}

func NewRelay(hub *Hub, everyN int) *Relay {
	if everyN < 1 {
		everyN = 1
	}
	return &Relay{hub: hub, everyN: everyN}
}

var relayedEvents = []event.EventType{
	event.WaveStarted,
	event.WaveCleared,
	event.BossSpawned,
	event.BossAbilityCast,
	event.DiceMerged,
	event.GameOver,
	event.GameRestarted,
}

// Attach subscribes the relay to the events observers see.
func (r *Relay) Attach(d *event.Dispatcher) {
	for _, t := range relayedEvents {
		d.Subscribe(t, r)
	}
}

func (r *Relay) OnEvent(e event.Event) {
	r.hub.Publish(string(e.Type), e.Data)
}

// Tick is called once per frame. Every Nth frame it publishes snapshot().
func (r *Relay) Tick(snapshot func() interface{}) {
	r.frame++
	if r.frame < r.everyN {
		return
	}
	r.frame = 0
	if r.hub.Clients() == 0 {
		return
	}
	r.hub.Publish("snapshot", snapshot())
}
