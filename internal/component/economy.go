package component

// UpgradeKind — улучшаемый во время забега параметр.
type UpgradeKind int

const (
	UpgradeDamage UpgradeKind = iota
	UpgradeFireRate
	UpgradeRange
)

// AllUpgradeKinds lists upgrade kinds in display order.
var AllUpgradeKinds = []UpgradeKind{UpgradeDamage, UpgradeFireRate, UpgradeRange}

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeDamage:
		return "damage"
	case UpgradeFireRate:
		return "firerate"
	case UpgradeRange:
		return "range"
	default:
		return "unknown"
	}
}

// Upgrades — уровни улучшений, каждый начинается с 1.
type Upgrades struct {
	Damage   int
	FireRate int
	Range    int
}

// NewUpgrades returns all upgrades at level 1.
func NewUpgrades() Upgrades {
	return Upgrades{Damage: 1, FireRate: 1, Range: 1}
}

// Level returns the level of the given kind.
func (u Upgrades) Level(k UpgradeKind) int {
	switch k {
	case UpgradeDamage:
		return u.Damage
	case UpgradeFireRate:
		return u.FireRate
	case UpgradeRange:
		return u.Range
	}
	return 1
}

// Set sets the level of the given kind.
func (u *Upgrades) Set(k UpgradeKind, level int) {
	switch k {
	case UpgradeDamage:
		u.Damage = level
	case UpgradeFireRate:
		u.FireRate = level
	case UpgradeRange:
		u.Range = level
	}
}

// Economy — деньги игрока, текущая цена спавна и уровни улучшений.
type Economy struct {
	Currency  int
	SpawnCost int
	Upgrades  Upgrades
}
