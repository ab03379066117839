package app

import (
	"go-dice-defense/internal/component"
	"go-dice-defense/internal/defs"
	"go-dice-defense/pkg/gridmap"
)

// Snapshot — неизменяемая копия состояния для отрисовки и наблюдателей.
type Snapshot struct {
	Level         string               `json:"level"`
	GameTime      float64              `json:"gameTime"`
	Phase         component.Phase      `json:"phase"`
	Health        int                  `json:"health"`
	MaxHealth     int                  `json:"maxHealth"`
	Currency      int                  `json:"currency"`
	SpawnCost     int                  `json:"spawnCost"`
	Upgrades      []UpgradeView        `json:"upgrades"`
	TargetMode    component.TargetMode `json:"targetMode"`
	Speed         int                  `json:"speed"`
	Wave          WaveView             `json:"wave"`
	WavesSurvived int                  `json:"wavesSurvived"`
	Selected      int                  `json:"selected"`
	Grid          gridmap.Grid         `json:"grid"`
	Path          []gridmap.Point      `json:"path"`
	Dice          []DieView            `json:"dice"`
	Enemies       []EnemyView          `json:"enemies"`
	Shots         []ShotView           `json:"shots"`
	Zones         []ZoneView           `json:"zones"`
}

type UpgradeView struct {
	Kind  component.UpgradeKind `json:"kind"`
	Level int                   `json:"level"`
	Cost  int                   `json:"cost"` // 0 при максимальном уровне
}

type WaveView struct {
	Number    int                 `json:"number"`
	Phase     component.WavePhase `json:"phase"`
	IsBoss    bool                `json:"isBoss"`
	Count     int                 `json:"count"`
	Pending   int                 `json:"pending"` // ещё не появились
	Alive     int                 `json:"alive"`
	Countdown float64             `json:"countdown"`
}

type DieView struct {
	Slot      int               `json:"slot"`
	Type      component.DieType `json:"type"`
	Level     int               `json:"level"`
	Center    gridmap.Point     `json:"center"`
	Damage    float64           `json:"damage"`
	Period    float64           `json:"period"`
	Range     float64           `json:"range"`
	Chain     int               `json:"chain,omitempty"`
	Slow      float64           `json:"slow,omitempty"` // множитель скорости цели
	Cooldown  float64           `json:"cooldown"`
	Mergeable bool              `json:"mergeable"` // можно слить с выбранным
}

type EnemyView struct {
	ID        uint64        `json:"id"`
	Pos       gridmap.Point `json:"pos"`
	Health    float64       `json:"health"`
	MaxHealth float64       `json:"maxHealth"`
	IsBoss    bool          `json:"isBoss"`
	Slowed    bool          `json:"slowed"`
}

type ShotView struct {
	From gridmap.Point     `json:"from"`
	To   gridmap.Point     `json:"to"`
	Type component.DieType `json:"type"`
	Fade float64           `json:"fade"` // 1 → 0 за время жизни
}

type ZoneView struct {
	Center  gridmap.Point `json:"center"`
	Radius  float64       `json:"radius"`
	Slots   []int         `json:"slots"`
	Warning bool          `json:"warning"`
}

// Snapshot returns a deep copy of the session state.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	snap := Snapshot{
		Level:         g.Level.Name,
		GameTime:      w.GameTime,
		Phase:         w.Phase,
		Health:        w.Health,
		MaxHealth:     w.MaxHealth,
		Currency:      w.Economy.Currency,
		SpawnCost:     w.Economy.SpawnCost,
		TargetMode:    w.TargetMode,
		Speed:         g.SpeedMultiplier,
		WavesSurvived: g.WavesSurvived(),
		Selected:      w.Selected,
		Grid:          *g.Grid,
		Path:          append([]gridmap.Point(nil), g.Path.Points...),
		Wave: WaveView{
			Number:    w.Wave.Number,
			Phase:     w.Wave.Phase,
			IsBoss:    w.Wave.IsBoss,
			Count:     w.Wave.Count,
			Pending:   w.Wave.EnemiesToSpawn,
			Alive:     w.LiveEnemyCount(),
			Countdown: g.WaveSystem.Countdown(),
		},
	}

	for _, k := range component.AllUpgradeKinds {
		lvl := w.Economy.Upgrades.Level(k)
		cost, _ := defs.UpgradeCost(lvl)
		snap.Upgrades = append(snap.Upgrades, UpgradeView{Kind: k, Level: lvl, Cost: cost})
	}

	for _, d := range w.Board.Dice() {
		st := g.CombatSystem.StatsOf(d)
		snap.Dice = append(snap.Dice, DieView{
			Slot:      d.Slot,
			Type:      d.Type,
			Level:     d.Level,
			Center:    g.Grid.CenterOf(d.Slot),
			Damage:    st.Damage,
			Period:    st.Period,
			Range:     st.Range,
			Chain:     st.ChainJumps,
			Slow:      st.SlowFactor,
			Cooldown:  d.Cooldown,
			Mergeable: w.Selected >= 0 && g.MergeSystem.CanMerge(w.Selected, d.Slot),
		})
	}

	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        uint64(e.ID),
			Pos:       e.Pos,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			IsBoss:    e.IsBoss,
			Slowed:    e.Slow.Active(),
		})
	}

	for _, s := range w.Shots {
		fade := 1.0
		if s.Duration > 0 {
			fade = 1 - s.Timer/s.Duration
		}
		snap.Shots = append(snap.Shots, ShotView{From: s.From, To: s.To, Type: s.Type, Fade: fade})
	}

	for _, t := range w.Telegraphs {
		snap.Zones = append(snap.Zones, ZoneView{
			Center:  t.Center,
			Radius:  t.Radius,
			Slots:   append([]int(nil), t.Slots...),
			Warning: t.Warn > 0,
		})
	}
	return snap
}
