package component

// Phase — фаза игровой сессии
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "playing"
}

// TargetMode — стратегия выбора цели для всех кубиков.
type TargetMode int

const (
	TargetNearest TargetMode = iota
	TargetFront
	TargetWeak
	TargetStrong
	targetModeCount
)

// Next возвращает следующий режим по кругу.
func (m TargetMode) Next() TargetMode {
	return (m + 1) % targetModeCount
}

func (m TargetMode) String() string {
	switch m {
	case TargetNearest:
		return "nearest"
	case TargetFront:
		return "front"
	case TargetWeak:
		return "weak"
	case TargetStrong:
		return "strong"
	default:
		return "unknown"
	}
}
