package session

import "github.com/abhisek/wegbereiter/internal/content"

// Result is the outcome of one finished play-through of a lesson.
type Result struct {
	// Run identifies the play-through within the controller. It changes on
	// every lesson selection and restart.
	Run        int
	LessonID   string
	Score      int
	Total      int
	Percentage int
}

// AnswerRecord describes one evaluated answer.
type AnswerRecord struct {
	Run      int
	LessonID string
	Index    int
	Kind     content.Kind
	Given    string
	Expected string
	Correct  bool
	Token    uint64
}

// BuildResult creates a Result from the current state.
func BuildResult(run int, st State) Result {
	var id string
	if st.Lesson != nil {
		id = st.Lesson.ID
	}
	return Result{
		Run:        run,
		LessonID:   id,
		Score:      st.Score,
		Total:      st.Total(),
		Percentage: st.Percentage(),
	}
}
