package session

import "github.com/abhisek/wegbereiter/internal/content"

// Screen is the tag of the screen the session is currently showing.
type Screen int

const (
	ScreenStart       Screen = iota // Welcome screen, initial state
	ScreenMap                       // Lesson selection
	ScreenLessonIntro               // Lesson description and examples
	ScreenLesson                    // Answering exercises
	ScreenSummary                   // Result of a finished lesson
)

var screenNames = [...]string{
	ScreenStart:       "start",
	ScreenMap:         "map",
	ScreenLessonIntro: "lesson_intro",
	ScreenLesson:      "lesson",
	ScreenSummary:     "summary",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// FeedbackStatus is the outcome of evaluating one answer.
type FeedbackStatus int

const (
	FeedbackCorrect FeedbackStatus = iota + 1
	FeedbackIncorrect
)

func (s FeedbackStatus) String() string {
	switch s {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	}
	return "none"
}

// Feedback is the transient result shown after an answer.
type Feedback struct {
	Status FeedbackStatus

	// Token is unique per evaluation within a controller. Renderers use it to
	// tell two consecutive identical feedbacks apart.
	Token uint64
}

// Correct reports whether the feedback is for a correct answer.
func (f Feedback) Correct() bool {
	return f.Status == FeedbackCorrect
}

// State is a read-only copy of everything a renderer may observe.
type State struct {
	Screen Screen

	// Lesson is nil when no lesson is selected.
	Lesson *content.Lesson

	// Exercise is nil outside a lesson or when the index is out of range.
	Exercise content.Exercise

	ExerciseIndex int
	Score         int
	Answered      bool

	// Feedback is nil until the current exercise has been answered.
	Feedback *Feedback
}

// Total returns the number of exercises in the current lesson, or 0.
func (s State) Total() int {
	if s.Lesson == nil {
		return 0
	}
	return s.Lesson.ExerciseCount()
}

// Percentage returns the completion percentage for the current score.
func (s State) Percentage() int {
	return CompletionPercentage(s.Score, s.Total())
}

// SummaryMessage returns the encouragement for the current percentage.
func (s State) SummaryMessage() string {
	return SummaryMessage(s.Percentage())
}

// Progress returns the progress-bar fraction for the current exercise.
func (s State) Progress() float64 {
	return ProgressFraction(s.ExerciseIndex, s.Total())
}
