package leaderboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSize — сколько лучших результатов хранится.
const DefaultSize = 10

// Entry — один завершённый забег.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	RunID     uuid.UUID `gorm:"type:text;uniqueIndex" json:"runId"`
	Name      string    `json:"name"`
	Level     string    `gorm:"index" json:"level"`
	Waves     int       `gorm:"index" json:"waves"`
	GameTime  float64   `json:"gameTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps the top runs ordered by waves survived.
type Store struct {
	db     *gorm.DB
	size   int
	logger zerolog.Logger
}

// Open opens (or creates) the SQLite database at path. An empty path gives an
// in-memory database.
func Open(path string, size int, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open leaderboard db: %w", err)
	}
	if path == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		// одна база в памяти на соединение
		sqlDB.SetMaxOpenConns(1)
	}
	return New(db, size, log)
}

// New wraps an existing connection and migrates the schema.
func New(db *gorm.DB, size int, log zerolog.Logger) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate leaderboard: %w", err)
	}
	return &Store{db: db, size: size, logger: log}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ranked(db *gorm.DB) *gorm.DB {
	return db.Order("waves DESC").Order("created_at ASC").Order("id ASC")
}

// Save stores e and trims the table to the best runs. It returns the 1-based
// rank of e, or 0 if it did not make the cut.
func (s *Store) Save(e Entry) (int, error) {
	if e.RunID == uuid.Nil {
		e.RunID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Create(&e).Error; err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	var keep []uint
	if err := ranked(s.db.Model(&Entry{})).Limit(s.size).Pluck("id", &keep).Error; err != nil {
		return 0, fmt.Errorf("failed to rank runs: %w", err)
	}
	if err := s.db.Where("id NOT IN ?", keep).Delete(&Entry{}).Error; err != nil {
		return 0, fmt.Errorf("failed to trim leaderboard: %w", err)
	}

	for i, id := range keep {
		if id == e.ID {
			s.logger.Info().Str("run", e.RunID.String()).Int("waves", e.Waves).Int("rank", i+1).Msg("run saved to leaderboard")
			return i + 1, nil
		}
	}
	s.logger.Debug().Int("waves", e.Waves).Msg("run did not reach the leaderboard")
	return 0, nil
}

// Top returns up to limit best runs (limit <= 0 means the whole board).
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 || limit > s.size {
		limit = s.size
	}
	var out []Entry
	if err := ranked(s.db).Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return out, nil
}

// Get looks up a run by its id.
func (s *Store) Get(runID uuid.UUID) (Entry, bool, error) {
	var e Entry
	err := s.db.Where("run_id = ?", runID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

// IsHighScore reports whether a run with the given waves would enter the board.
func (s *Store) IsHighScore(waves int) (bool, error) {
	var count int64
	if err := s.db.Model(&Entry{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count < int64(s.size) {
		return true, nil
	}
	var worst Entry
	if err := s.db.Order("waves ASC").First(&worst).Error; err != nil {
		return false, err
	}
	return waves > worst.Waves, nil
}
