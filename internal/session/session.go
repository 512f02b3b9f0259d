package session

import (
	"go.uber.org/zap"

	"github.com/abhisek/wegbereiter/internal/content"
)

// Catalog is the read-only lesson lookup the controller needs.
type Catalog interface {
	Lesson(id string) (content.Lesson, bool)
}

// Controller is the screen and exercise state machine for one play-through.
//
// Events that are not valid in the current state are ignored and reported as
// false. A Controller is driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	catalog Catalog
	logger  *zap.Logger

	screen   Screen
	lesson   *content.Lesson
	index    int
	score    int
	answered bool
	feedback *Feedback

	evaluations uint64
	run         int

	answerHooks   []func(AnswerRecord)
	completeHooks []func(Result)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for tracing and invariant checks. A
// development logger panics on a broken invariant; a production one logs it.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller on the start screen.
func New(catalog Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		logger:  zap.NewNop(),
		screen:  ScreenStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("session")
	return c
}

// OnAnswer registers fn to run after every evaluated answer.
func (c *Controller) OnAnswer(fn func(AnswerRecord)) {
	c.answerHooks = append(c.answerHooks, fn)
}

// OnComplete registers fn to run when a play-through reaches the summary.
func (c *Controller) OnComplete(fn func(Result)) {
	c.completeHooks = append(c.completeHooks, fn)
}

// Start leaves the welcome screen for the lesson map.
func (c *Controller) Start() bool {
	if c.screen != ScreenStart {
		return c.ignore("start")
	}
	c.goTo(ScreenMap)
	return true
}

// SelectLesson opens the intro of lesson id and resets all per-lesson state.
func (c *Controller) SelectLesson(id string) bool {
	if c.screen != ScreenMap {
		return c.ignore("select_lesson")
	}
	l, ok := c.catalog.Lesson(id)
	if !ok {
		c.logger.Debug("unknown lesson", zap.String("lesson", id))
		return false
	}
	c.lesson = &l
	c.resetProgress()
	c.goTo(ScreenLessonIntro)
	return true
}

// StartExercises moves from the lesson intro to the first exercise.
func (c *Controller) StartExercises() bool {
	if c.screen != ScreenLessonIntro || c.lesson == nil {
		return c.ignore("start_exercises")
	}
	if c.lesson.ExerciseCount() == 0 {
		// Nothing to answer; go straight to a 0 of 0 summary.
		c.complete()
		return true
	}
	c.goTo(ScreenLesson)
	return true
}

// SubmitAnswer evaluates a for the current exercise. Only the first
// submission per exercise counts; later ones are ignored until Advance.
func (c *Controller) SubmitAnswer(a Answer) bool {
	if c.screen != ScreenLesson || c.answered || a == nil {
		return c.ignore("submit_answer")
	}
	ex, ok := c.current()
	if !ok {
		return false
	}

	correct, fits := Evaluate(ex, a)
	if !fits {
		c.logger.Debug("answer does not fit exercise",
			zap.String("kind", string(a.Kind())),
			zap.String("exercise_kind", string(ex.Kind())))
		return false
	}

	c.evaluations++
	status := FeedbackIncorrect
	if correct {
		c.score++
		status = FeedbackCorrect
	}
	c.feedback = &Feedback{Status: status, Token: c.evaluations}
	c.answered = true

	if c.score > c.lesson.ExerciseCount() {
		c.logger.DPanic("score exceeds exercise count",
			zap.Int("score", c.score),
			zap.Int("total", c.lesson.ExerciseCount()))
	}

	rec := AnswerRecord{
		Run:      c.run,
		LessonID: c.lesson.ID,
		Index:    c.index,
		Kind:     ex.Kind(),
		Given:    a.String(),
		Expected: Expected(ex).String(),
		Correct:  correct,
		Token:    c.feedback.Token,
	}
	c.logger.Debug("answer evaluated",
		zap.String("lesson", rec.LessonID),
		zap.Int("index", rec.Index),
		zap.Bool("correct", correct),
		zap.Int("score", c.score))
	for _, fn := range c.answerHooks {
		fn(rec)
	}
	return true
}

// Advance moves past an answered exercise, to the next one or the summary.
func (c *Controller) Advance() bool {
	if c.screen != ScreenLesson || !c.answered || c.lesson == nil {
		return c.ignore("advance")
	}
	c.answered = false
	c.feedback = nil
	if c.index+1 < c.lesson.ExerciseCount() {
		c.index++
		return true
	}
	c.complete()
	return true
}

// Restart re-enters the current lesson's intro with a fresh score.
func (c *Controller) Restart() bool {
	if c.screen != ScreenSummary || c.lesson == nil {
		return c.ignore("restart")
	}
	c.resetProgress()
	c.goTo(ScreenLessonIntro)
	return true
}

// BackToMap returns from the summary to the lesson map.
func (c *Controller) BackToMap() bool {
	if c.screen != ScreenSummary {
		return c.ignore("back_to_map")
	}
	c.lesson = nil
	c.goTo(ScreenMap)
	return true
}

// Screen returns the current screen tag.
func (c *Controller) Screen() Screen {
	return c.screen
}

// Lesson returns the selected lesson.
func (c *Controller) Lesson() (content.Lesson, bool) {
	if c.lesson == nil {
		return content.Lesson{}, false
	}
	return c.lesson.Clone(), true
}

// Exercise returns the current exercise while a lesson is selected.
func (c *Controller) Exercise() (content.Exercise, bool) {
	if c.lesson == nil {
		return nil, false
	}
	return c.current()
}

// ExerciseIndex returns the 0-based index of the current exercise.
func (c *Controller) ExerciseIndex() int { return c.index }

// Score returns the number of correct answers in the current play-through.
func (c *Controller) Score() int { return c.score }

// Answered reports whether the current exercise has been answered.
func (c *Controller) Answered() bool { return c.answered }

// Feedback returns the feedback for the current exercise, if any.
func (c *Controller) Feedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Run returns the play-through counter. It increases on every lesson
// selection and restart.
func (c *Controller) Run() int { return c.run }

// State returns a copy of the observable state.
func (c *Controller) State() State {
	st := State{
		Screen:        c.screen,
		ExerciseIndex: c.index,
		Score:         c.score,
		Answered:      c.answered,
	}
	if c.lesson != nil {
		l := c.lesson.Clone()
		st.Lesson = &l
		if ex, ok := c.current(); ok {
			st.Exercise = ex
		}
	}
	if c.feedback != nil {
		f := *c.feedback
		st.Feedback = &f
	}
	return st
}

func (c *Controller) current() (content.Exercise, bool) {
	if c.index < 0 || c.index >= c.lesson.ExerciseCount() {
		if c.screen == ScreenLesson {
			c.logger.DPanic("exercise index out of range",
				zap.String("lesson", c.lesson.ID),
				zap.Int("index", c.index),
				zap.Int("total", c.lesson.ExerciseCount()))
		}
		return nil, false
	}
	return c.lesson.Exercises[c.index], true
}

func (c *Controller) resetProgress() {
	c.run++
	c.index = 0
	c.score = 0
	c.answered = false
	c.feedback = nil
}

func (c *Controller) complete() {
	c.goTo(ScreenSummary)
	res := BuildResult(c.run, c.State())
	c.logger.Info("lesson completed",
		zap.String("lesson", res.LessonID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.Int("percentage", res.Percentage))
	for _, fn := range c.completeHooks {
		fn(res)
	}
}

func (c *Controller) goTo(s Screen) {
	c.logger.Debug("screen transition",
		zap.Stringer("from", c.screen),
		zap.Stringer("to", s))
	c.screen = s
}

func (c *Controller) ignore(event string) bool {
	c.logger.Debug("event ignored",
		zap.String("event", event),
		zap.Stringer("screen", c.screen),
		zap.Bool("answered", c.answered))
	return false
}
