package defs

import "go-dice-defense/pkg/gridmap"

// LevelDefinition — карта: путь врагов и множитель сложности.
type LevelDefinition struct {
	ID         string
	Name       string
	Difficulty float64
	Path       []gridmap.Point
}

// Levels — доступные карты. Пути проложены вокруг поля 5x3.
var Levels = []LevelDefinition{
	{
		ID:         "meadow",
		Name:       "Meadow",
		Difficulty: 1.0,
		Path: []gridmap.Point{
			{X: 1280, Y: 140},
			{X: 260, Y: 140},
			{X: 260, Y: 630},
			{X: 1280, Y: 630},
		},
	},
	{
		ID:         "tundra",
		Name:       "Tundra",
		Difficulty: 1.2,
		Path: []gridmap.Point{
			{X: 140, Y: 0},
			{X: 140, Y: 630},
			{X: 1020, Y: 630},
			{X: 1020, Y: 120},
			{X: 1280, Y: 120},
		},
	},
	{
		ID:         "canyon",
		Name:       "Canyon",
		Difficulty: 1.4,
		Path: []gridmap.Point{
			{X: 1180, Y: 0},
			{X: 1180, Y: 660},
			{X: 230, Y: 660},
			{X: 230, Y: 120},
			{X: 640, Y: 120},
		},
	},
}

// LevelByIndex clamps idx into range and returns that level.
func LevelByIndex(idx int) LevelDefinition {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Levels) {
		idx = len(Levels) - 1
	}
	return Levels[idx]
}
