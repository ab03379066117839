package defs

// MaxUpgradeLevel — максимальный уровень внутриигрового улучшения.
const MaxUpgradeLevel = 5

// upgradeCosts[i]: цена перехода с уровня i+1 на i+2.
var upgradeCosts = []int{50, 100, 200, 400}

// UpgradeCost returns the price of raising an upgrade from level to level+1.
// ok is false when the upgrade is already maxed.
func UpgradeCost(level int) (cost int, ok bool) {
	if level < 1 || level >= MaxUpgradeLevel {
		return 0, false
	}
	return upgradeCosts[level-1], true
}

// DamageMultiplier: +20% per level above 1.
func DamageMultiplier(level int) float64 {
	return 1 + 0.20*float64(max(level, 1)-1)
}

// FireRateMultiplier: +15% per level above 1 (higher = faster).
func FireRateMultiplier(level int) float64 {
	return 1 + 0.15*float64(max(level, 1)-1)
}

// RangeMultiplier: +15% per level above 1.
func RangeMultiplier(level int) float64 {
	return 1 + 0.15*float64(max(level, 1)-1)
}
