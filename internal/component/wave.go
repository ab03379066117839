package component

// WavePhase — состояние директора волн.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveActive
	WaveCleared
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveActive:
		return "active"
	case WaveCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Wave хранит состояние текущей (или следующей, в фазе Idle) волны.
type Wave struct {
	Number         int
	Phase          WavePhase
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
	IdleTimer      float64 // Время, проведённое в Idle (для автостарта)

	// Параметры врагов текущей волны
	Count      int
	Health     float64
	Speed      float64
	Reward     int
	IsBoss     bool
	BossQueued bool // Босс ещё не появился
}
