package store

import (
	"context"
	"time"
)

// QueryOpts configures run queries with filtering and pagination.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	LessonID string // only runs of this lesson (empty = all)
}

// AnswerEventData captures one evaluated answer.
type AnswerEventData struct {
	RunID         string
	LessonID      string
	ExerciseIndex int
	Kind          string // "identify" or "complete"
	Given         string
	Expected      string
	Correct       bool
}

// RunEventData captures one finished play-through of a lesson.
type RunEventData struct {
	RunID      string
	LessonID   string
	Score      int
	Total      int
	Percentage int
}

// RunRecord is a stored run event.
type RunRecord struct {
	Sequence  int64
	Timestamp time.Time
	RunEventData
}

// LessonStat aggregates the history of one lesson.
type LessonStat struct {
	LessonID       string
	Runs           int
	BestPercentage int
	LastPercentage int
	Answers        int
	CorrectAnswers int
}

// Accuracy returns the fraction of correct answers, or 0 without answers.
func (s LessonStat) Accuracy() float64 {
	if s.Answers == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.Answers)
}

// EventRepo provides append and query access to play history.
type EventRepo interface {
	// AppendAnswerEvent records one evaluated answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendRunEvent records a finished play-through.
	AppendRunEvent(ctx context.Context, data RunEventData) error

	// RecentRuns returns finished runs, newest first.
	RecentRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error)

	// LessonStats returns per-lesson aggregates ordered by lesson ID.
	LessonStats(ctx context.Context) ([]LessonStat, error)

	// Reset deletes all recorded history.
	Reset(ctx context.Context) error
}
