package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound — звуковой эффект игры.
type Sound int

const (
	SoundSpawn Sound = iota
	SoundMerge
	SoundKill
	SoundBaseHit
	SoundWaveStart
	SoundBoss
	SoundUpgrade
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundSpawn:
		return "spawn"
	case SoundMerge:
		return "merge"
	case SoundKill:
		return "kill"
	case SoundBaseHit:
		return "base_hit"
	case SoundWaveStart:
		return "wave_start"
	case SoundBoss:
		return "boss"
	case SoundUpgrade:
		return "upgrade"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Create builds a fresh streamer for s at the given volume (0..1).
func Create(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundSpawn:
		st = tone(660, 0, 80*time.Millisecond, WaveSine)
	case SoundMerge:
		st = beep.Seq(
			tone(523, 0, 70*time.Millisecond, WaveSine),
			tone(784, 0, 110*time.Millisecond, WaveSine),
		)
	case SoundKill:
		st = newVolume(tone(0, 0, 60*time.Millisecond, WaveNoise), 0.4)
	case SoundBaseHit:
		st = tone(110, 70, 200*time.Millisecond, WaveSaw)
	case SoundWaveStart:
		st = tone(300, 600, 250*time.Millisecond, WaveSquare)
	case SoundBoss:
		st = beep.Mix(
			tone(80, 60, 600*time.Millisecond, WaveSquare),
			newVolume(tone(160, 120, 600*time.Millisecond, WaveSine), 0.5),
		)
	case SoundUpgrade:
		st = beep.Seq(
			tone(440, 0, 60*time.Millisecond, WaveSine),
			tone(660, 0, 60*time.Millisecond, WaveSine),
			tone(880, 0, 90*time.Millisecond, WaveSine),
		)
	case SoundGameOver:
		st = tone(440, 110, 900*time.Millisecond, WaveSaw)
	default:
		st = beep.Silence(0)
	}
	return newVolume(st, volume)
}
