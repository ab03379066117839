package audio

import (
	"sync"
	"time"

	"go-dice-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// sink — куда уходят готовые звуки (динамик или тестовый буфер).
type sink interface {
	Play(s beep.Streamer)
}

type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SoundManager plays synthesized effects in response to game events.
// Without an initialized device every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	sink        sink
	mixer       *beep.Mixer
	initialized bool
	logger      zerolog.Logger
}

func NewSoundManager(volume float64, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		volume: volume,
		mixer:  &beep.Mixer{},
		logger: log,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.sink = &speakerSink{mixer: sm.mixer}
	sm.initialized = true
	sm.logger.Debug().Int("sampleRate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.sink = nil
	sm.initialized = false
}

// Play plays s once.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sink == nil {
		return
	}
	sm.sink.Play(Create(s, sm.volume))
}

// Attach subscribes the manager to the game events it voices.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	for t := range eventSounds {
		d.Subscribe(t, sm)
	}
}

var eventSounds = map[event.EventType]Sound{
	event.DieSpawned:       SoundSpawn,
	event.DiceMerged:       SoundMerge,
	event.EnemyKilled:      SoundKill,
	event.EnemyReachedBase: SoundBaseHit,
	event.WaveStarted:      SoundWaveStart,
	event.BossSpawned:      SoundBoss,
	event.UpgradePurchased: SoundUpgrade,
	event.GameOver:         SoundGameOver,
}

func (sm *SoundManager) OnEvent(e event.Event) {
	if s, ok := eventSounds[e.Type]; ok {
		sm.Play(s)
	}
}
