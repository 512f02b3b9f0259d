package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/wegbereiter/internal/session"
	"github.com/abhisek/wegbereiter/internal/store"
)

const writeTimeout = 5 * time.Second

// bestScoresMsg carries the best percentage per lesson from the history.
type bestScoresMsg struct {
	best map[string]int
}

// historySavedMsg reports that queued writes finished.
type historySavedMsg struct {
	failed int
}

// Recorder persists answers and finished runs reported by the controller.
// Hooks only queue writes; Flush turns them into a command so the event loop
// never waits on the database. A nil Recorder records nothing.
type Recorder struct {
	repo   store.EventRepo
	logger *zap.Logger

	runIDs  map[int]string
	pending []func(ctx context.Context) error
	refresh bool
}

// NewRecorder returns a Recorder writing to repo, or nil when repo is nil.
func NewRecorder(repo store.EventRepo, logger *zap.Logger) *Recorder {
	if repo == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		repo:   repo,
		logger: logger.Named("history"),
		runIDs: make(map[int]string),
	}
}

// Attach registers the recorder's hooks on c.
func (r *Recorder) Attach(c *session.Controller) {
	if r == nil {
		return
	}
	c.OnAnswer(r.recordAnswer)
	c.OnComplete(r.recordRun)
}

// runID maps a controller run number to a stable UUID.
func (r *Recorder) runID(run int) string {
	id, ok := r.runIDs[run]
	if !ok {
		id = uuid.NewString()
		r.runIDs[run] = id
	}
	return id
}

func (r *Recorder) recordAnswer(rec session.AnswerRecord) {
	data := store.AnswerEventData{
		RunID:         r.runID(rec.Run),
		LessonID:      rec.LessonID,
		ExerciseIndex: rec.Index,
		Kind:          string(rec.Kind),
		Given:         rec.Given,
		Expected:      rec.Expected,
		Correct:       rec.Correct,
	}
	r.pending = append(r.pending, func(ctx context.Context) error {
		return r.repo.AppendAnswerEvent(ctx, data)
	})
}

func (r *Recorder) recordRun(res session.Result) {
	data := store.RunEventData{
		RunID:      r.runID(res.Run),
		LessonID:   res.LessonID,
		Score:      res.Score,
		Total:      res.Total,
		Percentage: res.Percentage,
	}
	delete(r.runIDs, res.Run)
	r.pending = append(r.pending, func(ctx context.Context) error {
		return r.repo.AppendRunEvent(ctx, data)
	})
	r.refresh = true
}

// Flush returns a command performing all queued writes in order, or nil
// when nothing is queued. After a finished run it also reloads best scores.
func (r *Recorder) Flush() tea.Cmd {
	if r == nil || len(r.pending) == 0 {
		return nil
	}
	writes, refresh := r.pending, r.refresh
	r.pending, r.refresh = nil, false

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		failed := 0
		for _, write := range writes {
			if err := write(ctx); err != nil {
				failed++
				r.logger.Warn("history write failed", zap.Error(err))
			}
		}
		if !refresh {
			return historySavedMsg{failed: failed}
		}
		return r.loadBest(ctx)
	}
}

// LoadBest returns a command reading the best score per lesson.
func (r *Recorder) LoadBest() tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return r.loadBest(ctx)
	}
}

func (r *Recorder) loadBest(ctx context.Context) tea.Msg {
	stats, err := r.repo.LessonStats(ctx)
	if err != nil {
		r.logger.Warn("load lesson stats failed", zap.Error(err))
		return nil
	}
	best := make(map[string]int, len(stats))
	for _, s := range stats {
		if s.Runs > 0 {
			best[s.LessonID] = s.BestPercentage
		}
	}
	return bestScoresMsg{best: best}
}
