package component

import "go-dice-defense/pkg/gridmap"

// Shot — визуальный след выстрела кубика (урон применяется мгновенно).
type Shot struct {
	From, To gridmap.Point
	Type     DieType
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Telegraph — зона способности босса. Сначала предупреждение, затем действие.
type Telegraph struct {
	Center     gridmap.Point
	Slot       int
	Slots      []int   // Ячейки под действием зоны
	Radius     float64 // Радиус в пикселях (для врагов и отрисовки)
	Warn       float64 // Оставшееся время предупреждения
	Effect     float64 // Оставшееся время действия
	EnemySpeed float64 // Множитель скорости врагов внутри зоны
	DicePeriod float64 // Множитель периода стрельбы кубиков внутри зоны (>1 медленнее)
}

// InEffect reports whether the zone is past its warning phase and still active.
func (t *Telegraph) InEffect() bool {
	return t.Warn <= 0 && t.Effect > 0
}

// Done reports whether the zone has expired.
func (t *Telegraph) Done() bool {
	return t.Warn <= 0 && t.Effect <= 0
}
