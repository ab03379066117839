package defs

import "math"

// BossWaveEvery — каждая N-я волна содержит босса.
const BossWaveEvery = 5

// WaveScaling задаёт рост численности волн.
type WaveScaling struct {
	BaseCount int
	Growth    int
}

// WaveDefinition описывает параметры одной волны врагов.
type WaveDefinition struct {
	Number int
	Count  int // Обычные враги, без босса
	Health float64
	Speed  float64
	Reward int
	IsBoss bool
}

// IsBossWave reports whether wave n is a boss wave.
func IsBossWave(n int) bool {
	return n > 0 && n%BossWaveEvery == 0
}

// WaveFor computes wave n. Count, health and speed are monotonic in n.
func WaveFor(n int, difficulty float64, s WaveScaling) WaveDefinition {
	if n < 1 {
		n = 1
	}
	if difficulty <= 0 {
		difficulty = 1
	}
	return WaveDefinition{
		Number: n,
		Count:  s.BaseCount + (n-1)*s.Growth,
		Health: EnemyBaseHealth * math.Pow(float64(n), EnemyHealthExponent) * difficulty,
		Speed:  EnemyBaseSpeed + math.Min(EnemyMaxSpeedBonus, EnemySpeedPerWave*float64(n-1)),
		Reward: EnemyBaseReward + n,
		IsBoss: IsBossWave(n),
	}
}
