// internal/component/die.go
package component

import "go-dice-defense/internal/types"

// DieType — тип кубика. Поведение задаётся таблицей в defs, а не иерархией типов.
type DieType int

const (
	DieSingle DieType = iota
	DieMulti
	DieFreeze
)

// AllDieTypes lists every die type; spawn and merge roll from it.
var AllDieTypes = []DieType{DieSingle, DieMulti, DieFreeze}

func (t DieType) String() string {
	switch t {
	case DieSingle:
		return "single"
	case DieMulti:
		return "multi"
	case DieFreeze:
		return "freeze"
	default:
		return "unknown"
	}
}

// Valid сообщает, входит ли тип в AllDieTypes.
func (t DieType) Valid() bool {
	return t >= DieSingle && t <= DieFreeze
}

// Die — кубик, стоящий в ячейке поля.
type Die struct {
	ID       types.EntityID
	Type     DieType
	Level    int
	Slot     int
	Cooldown float64 // Оставшееся время до следующего выстрела (сек)
}
