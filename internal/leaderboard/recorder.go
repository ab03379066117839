package leaderboard

import (
	"go-dice-defense/internal/event"

	"github.com/rs/zerolog"
)

// Recorder сохраняет результат забега по событию GameOver.
type Recorder struct {
	store    *Store
	name     string
	logger   zerolog.Logger
	lastRank int
}

func NewRecorder(store *Store, playerName string, log zerolog.Logger) *Recorder {
	return &Recorder{store: store, name: playerName, logger: log}
}

// Attach subscribes the recorder to game over events.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.Subscribe(event.GameOver, r)
	d.Subscribe(event.GameRestarted, r)
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameRestarted:
		r.lastRank = 0
	case event.GameOver:
		data, ok := e.Data.(event.GameOverData)
		if !ok {
			return
		}
		rank, err := r.store.Save(Entry{
			Name:     r.name,
			Level:    data.Level,
			Waves:    data.WavesSurvived,
			GameTime: data.GameTime,
		})
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to record run")
			return
		}
		r.lastRank = rank
	}
}

// LastRank returns the leaderboard rank of the last finished run, 0 if none.
func (r *Recorder) LastRank() int {
	return r.lastRank
}

// Store returns the underlying store.
func (r *Recorder) Store() *Store {
	return r.store
}
