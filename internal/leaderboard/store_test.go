package leaderboard

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-dice-defense/internal/event"
)

func newTestStore(t *testing.T, size int) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := New(db, size, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndTop(t *testing.T) {
	s := newTestStore(t, 10)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, waves := range []int{3, 12, 7} {
		_, err := s.Save(Entry{Name: "p", Level: "meadow", Waves: waves, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []int{12, 7, 3}, []int{top[0].Waves, top[1].Waves, top[2].Waves})
	for _, e := range top {
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", e.RunID.String())
	}

	top, err = s.Top(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 12, top[0].Waves)
}

func TestSaveKeepsOnlyBestRuns(t *testing.T) {
	s := newTestStore(t, 3)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ranks := []int{}
	for i, waves := range []int{5, 9, 1, 7, 2} {
		rank, err := s.Save(Entry{Name: "p", Waves: waves, CreatedAt: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
		ranks = append(ranks, rank)
	}
	assert.Equal(t, []int{1, 1, 3, 2, 0}, ranks)

	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []int{9, 7, 5}, []int{top[0].Waves, top[1].Waves, top[2].Waves})

	ok, err := s.IsHighScore(6)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.IsHighScore(5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTiesKeepEarlierRun(t *testing.T) {
	s := newTestStore(t, 1)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := s.Save(Entry{Name: "first", Waves: 4, CreatedAt: base})
	require.NoError(t, err)
	second, err := s.Save(Entry{Name: "second", Waves: 4, CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "first", top[0].Name)
}

func TestGetByRunID(t *testing.T) {
	s := newTestStore(t, 10)
	_, err := s.Save(Entry{Name: "p", Waves: 2})
	require.NoError(t, err)
	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 1)

	got, ok, err := s.Get(top[0].RunID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.Waves)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := Open(path, 10, zerolog.Nop())
	require.NoError(t, err)
	_, err = s.Save(Entry{Name: "p", Waves: 8})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, 10, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()
	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 8, top[0].Waves)
}

func TestRecorderSavesOnGameOver(t *testing.T) {
	s := newTestStore(t, 10)
	d := event.NewDispatcher()
	r := NewRecorder(s, "alice", zerolog.Nop())
	r.Attach(d)

	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{WavesSurvived: 6, Level: "tundra", GameTime: 321}})
	assert.Equal(t, 1, r.LastRank())

	top, err := s.Top(0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "alice", top[0].Name)
	assert.Equal(t, "tundra", top[0].Level)
	assert.Equal(t, 6, top[0].Waves)

	d.Dispatch(event.Event{Type: event.GameRestarted})
	assert.Zero(t, r.LastRank())
}
