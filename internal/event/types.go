// internal/event/types.go
package event

import "go-dice-defense/internal/component"

const (
	WaveStarted       EventType = "WaveStarted"
	WaveCleared       EventType = "WaveCleared"
	EnemySpawned      EventType = "EnemySpawned"
	BossSpawned       EventType = "BossSpawned"
	EnemyKilled       EventType = "EnemyKilled"      // Враг уничтожен
	EnemyReachedBase  EventType = "EnemyReachedBase" // Враг дошёл до базы
	DieSpawned        EventType = "DieSpawned"
	DiceMerged        EventType = "DiceMerged"
	DieTrashed        EventType = "DieTrashed"
	DieFired          EventType = "DieFired"
	UpgradePurchased  EventType = "UpgradePurchased"
	BossAbilityCast   EventType = "BossAbilityCast"
	TargetModeChanged EventType = "TargetModeChanged"
	SpeedChanged      EventType = "SpeedChanged"
	GameOver          EventType = "GameOver"
	GameRestarted     EventType = "GameRestarted"
)

type WaveData struct {
	Number int
	IsBoss bool
}

type EnemyData struct {
	Enemy  component.Enemy // копия
	Reward int
	Damage int
}

type DieData struct {
	Die  component.Die
	Cost int
}

type MergeData struct {
	From, To int
	Result   component.Die
	Refund   int
}

type ShotData struct {
	Die     component.Die
	Targets int
}

type UpgradeData struct {
	Kind  component.UpgradeKind
	Level int
	Cost  int
}

type GameOverData struct {
	WavesSurvived int
	Level         string
	GameTime      float64
}
