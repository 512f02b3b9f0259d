package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileStoreUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestSequenceIsSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{RunID: "r1", LessonID: "lesson1", Kind: "identify", Given: "true", Expected: "true", Correct: true}))
	require.NoError(t, repo.AppendRunEvent(ctx, RunEventData{RunID: "r1", LessonID: "lesson1", Score: 1, Total: 1, Percentage: 100}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{RunID: "r2", LessonID: "lesson1", Kind: "identify", Given: "false", Expected: "true"}))

	var answerSeqs []int64
	rows, err := s.DB().Query(`SELECT sequence FROM answer_events ORDER BY sequence`)
	require.NoError(t, err)
	for rows.Next() {
		var n int64
		require.NoError(t, rows.Scan(&n))
		answerSeqs = append(answerSeqs, n)
	}
	require.NoError(t, rows.Close())

	runs, err := repo.RecentRuns(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, []int64{1, 3}, answerSeqs)
	assert.Equal(t, int64(2), runs[0].Sequence)
}

func TestRecentRuns(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"lesson1", "lesson2", "lesson1"} {
		require.NoError(t, repo.AppendRunEvent(ctx, RunEventData{
			RunID:      "run-" + string(rune('a'+i)),
			LessonID:   id,
			Score:      i + 1,
			Total:      6,
			Percentage: (i + 1) * 100 / 6,
		}))
	}

	tests := []struct {
		name    string
		opts    QueryOpts
		wantIDs []string
	}{
		{"all newest first", QueryOpts{}, []string{"run-c", "run-b", "run-a"}},
		{"limit", QueryOpts{Limit: 2}, []string{"run-c", "run-b"}},
		{"by lesson", QueryOpts{LessonID: "lesson1"}, []string{"run-c", "run-a"}},
		{"unknown lesson", QueryOpts{LessonID: "nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := repo.RecentRuns(ctx, tt.opts)
			require.NoError(t, err)
			var ids []string
			for _, r := range runs {
				ids = append(ids, r.RunID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	runs, err := repo.RecentRuns(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, base.Add(3*time.Minute), runs[0].Timestamp)
	assert.Equal(t, 3, runs[0].Score)
}

func TestLessonStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []RunEventData{
		{RunID: "a", LessonID: "lesson2", Score: 3, Total: 6, Percentage: 50},
		{RunID: "b", LessonID: "lesson2", Score: 6, Total: 6, Percentage: 100},
		{RunID: "c", LessonID: "lesson2", Score: 4, Total: 6, Percentage: 67},
		{RunID: "d", LessonID: "lesson1", Score: 1, Total: 6, Percentage: 17},
	}
	for _, r := range runs {
		require.NoError(t, repo.AppendRunEvent(ctx, r))
	}
	answers := []AnswerEventData{
		{RunID: "a", LessonID: "lesson2", Kind: "complete", Given: "ss", Expected: "ss", Correct: true},
		{RunID: "a", LessonID: "lesson2", Kind: "complete", Given: "s", Expected: "ss"},
		{RunID: "e", LessonID: "lesson3", Kind: "complete", Given: "tz", Expected: "tz", Correct: true},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	stats, err := repo.LessonStats(ctx)
	require.NoError(t, err)

	want := []LessonStat{
		{LessonID: "lesson1", Runs: 1, BestPercentage: 17, LastPercentage: 17},
		{LessonID: "lesson2", Runs: 3, BestPercentage: 100, LastPercentage: 67, Answers: 2, CorrectAnswers: 1},
		{LessonID: "lesson3", Answers: 1, CorrectAnswers: 1},
	}
	assert.Equal(t, want, stats)
	assert.InDelta(t, 0.5, stats[1].Accuracy(), 1e-9)
	assert.Zero(t, stats[0].Accuracy())
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{RunID: "a", LessonID: "lesson1", Kind: "identify"}))
	require.NoError(t, repo.AppendRunEvent(ctx, RunEventData{RunID: "a", LessonID: "lesson1", Total: 6}))

	require.NoError(t, repo.Reset(ctx))

	runs, err := repo.RecentRuns(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, runs)
	stats, err := repo.LessonStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)

	// The counter starts over.
	require.NoError(t, repo.AppendRunEvent(ctx, RunEventData{RunID: "b", LessonID: "lesson1", Total: 6}))
	runs, err = repo.RecentRuns(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(1), runs[0].Sequence)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "x.db")
		t.Setenv("WEGBEREITER_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("WEGBEREITER_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "wegbereiter", "wegbereiter.db"), got)
	})
}
