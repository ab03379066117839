package defs

// Коэффициенты масштабирования врагов по номеру волны.
const (
	EnemyBaseHealth     = 30.0
	EnemyHealthExponent = 1.3
	EnemyBaseSpeed      = 36.0 // px/сек
	EnemySpeedPerWave   = 6.0
	EnemyMaxSpeedBonus  = 140.0
	EnemySpeedJitter    = 0.1 // скорость умножается на [1-j, 1+j)
	EnemyBaseReward     = 10
	EnemyBaseDamage     = 1

	BossHealthMult = 6.0
	BossSpeedMult  = 0.85
	BossReward     = 50
	BossBaseDamage = 3
)

// EnemyDefinition — параметры одного врага при появлении.
type EnemyDefinition struct {
	Health     float64
	Speed      float64
	Reward     int
	BaseDamage int
	IsBoss     bool
}

// RegularEnemy returns the stats of a regular enemy of the given wave.
func RegularEnemy(w WaveDefinition) EnemyDefinition {
	return EnemyDefinition{
		Health:     w.Health,
		Speed:      w.Speed,
		Reward:     w.Reward,
		BaseDamage: EnemyBaseDamage,
	}
}

// BossEnemy returns the amplified stats of the boss of the given wave.
func BossEnemy(w WaveDefinition) EnemyDefinition {
	return EnemyDefinition{
		Health:     w.Health * BossHealthMult,
		Speed:      w.Speed * BossSpeedMult,
		Reward:     BossReward + w.Number,
		BaseDamage: BossBaseDamage,
		IsBoss:     true,
	}
}
