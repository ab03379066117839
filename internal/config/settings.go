package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// GameSettings — базовые параметры забега.
type GameSettings struct {
	StartMoney  int     `mapstructure:"startMoney"`
	BaseHealth  int     `mapstructure:"baseHealth"`
	MaxDieLevel int     `mapstructure:"maxDieLevel"`
	BaseRange   float64 `mapstructure:"baseRange"`
	DiceFile    string  `mapstructure:"diceFile"`
}

type EconomySettings struct {
	SpawnCost          int `mapstructure:"spawnCost"`
	SpawnCostIncrement int `mapstructure:"spawnCostIncrement"`
	MergeRefund        int `mapstructure:"mergeRefund"`
}

// WaveSettings — параметры директора волн.
type WaveSettings struct {
	BaseCount     int     `mapstructure:"baseCount"`
	Growth        int     `mapstructure:"growth"`
	SpawnInterval float64 `mapstructure:"spawnInterval"` // сек симуляции
	Delay         float64 `mapstructure:"delay"`         // пауза перед автостартом
	AutoStart     bool    `mapstructure:"autoStart"`
}

type BoardSettings struct {
	Cols int `mapstructure:"cols"`
	Rows int `mapstructure:"rows"`
}

type LeaderboardSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Size    int    `mapstructure:"size"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type SpectatorSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	EveryN  int    `mapstructure:"everyN"` // Публиковать снимок раз в N кадров
}

type PlayerSettings struct {
	Name string `mapstructure:"name"`
}

// Settings holds the full runtime configuration.
type Settings struct {
	LogLevel      string              `mapstructure:"logLevel"`
	Seed          int64               `mapstructure:"seed"`
	StartFromGame bool                `mapstructure:"startFromGame"`
	Level         int                 `mapstructure:"level"`
	Player        PlayerSettings      `mapstructure:"player"`
	Game          GameSettings        `mapstructure:"game"`
	Economy       EconomySettings     `mapstructure:"economy"`
	Wave          WaveSettings        `mapstructure:"wave"`
	Board         BoardSettings       `mapstructure:"board"`
	Leaderboard   LeaderboardSettings `mapstructure:"leaderboard"`
	Audio         AudioSettings       `mapstructure:"audio"`
	Spectator     SpectatorSettings   `mapstructure:"spectator"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("startFromGame", false)
	v.SetDefault("level", 0)
	v.SetDefault("player.name", "player")

	v.SetDefault("game.startMoney", 100)
	v.SetDefault("game.baseHealth", 10)
	v.SetDefault("game.maxDieLevel", 7)
	v.SetDefault("game.baseRange", 420.0)
	v.SetDefault("game.diceFile", "")

	v.SetDefault("economy.spawnCost", 10)
	v.SetDefault("economy.spawnCostIncrement", 10)
	v.SetDefault("economy.mergeRefund", 3)

	v.SetDefault("wave.baseCount", 8)
	v.SetDefault("wave.growth", 2)
	v.SetDefault("wave.spawnInterval", 0.8)
	v.SetDefault("wave.delay", 5.0)
	v.SetDefault("wave.autoStart", true)

	v.SetDefault("board.cols", 5)
	v.SetDefault("board.rows", 3)

	v.SetDefault("leaderboard.enabled", true)
	v.SetDefault("leaderboard.path", "leaderboard.db")
	v.SetDefault("leaderboard.size", 10)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("spectator.enabled", false)
	v.SetDefault("spectator.addr", "localhost:8765")
	v.SetDefault("spectator.everyN", 6)
}

// New returns a viper instance with defaults and DICE_ env binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("DICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path (empty path = defaults only)
// and returns the decoded settings. A missing file is not an error.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}
	return Decode(v)
}

// Decode unmarshals v into Settings and validates it.
func Decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the default settings.
func Default() *Settings {
	v := viper.New()
	SetDefaults(v)
	s, err := Decode(v)
	if err != nil {
		// Значения по умолчанию всегда валидны
		panic(err)
	}
	return s
}

// Validate checks invariants the simulation relies on.
func (s *Settings) Validate() error {
	switch {
	case s.Board.Cols <= 0 || s.Board.Rows <= 0:
		return fmt.Errorf("invalid board size %dx%d", s.Board.Cols, s.Board.Rows)
	case s.Game.BaseHealth <= 0:
		return fmt.Errorf("baseHealth must be positive, got %d", s.Game.BaseHealth)
	case s.Game.MaxDieLevel < 1:
		return fmt.Errorf("maxDieLevel must be at least 1, got %d", s.Game.MaxDieLevel)
	case s.Game.StartMoney < 0:
		return fmt.Errorf("startMoney must be non-negative, got %d", s.Game.StartMoney)
	case s.Game.BaseRange < 0:
		return fmt.Errorf("baseRange must be non-negative, got %g", s.Game.BaseRange)
	case s.Economy.SpawnCost < 0 || s.Economy.SpawnCostIncrement < 0:
		return fmt.Errorf("spawn cost and increment must be non-negative")
	case s.Economy.MergeRefund < 0:
		return fmt.Errorf("mergeRefund must be non-negative, got %d", s.Economy.MergeRefund)
	case s.Wave.SpawnInterval <= 0:
		return fmt.Errorf("wave.spawnInterval must be positive")
	case s.Wave.BaseCount <= 0 || s.Wave.Growth < 0:
		return fmt.Errorf("invalid wave scaling base=%d growth=%d", s.Wave.BaseCount, s.Wave.Growth)
	}
	return nil
}
