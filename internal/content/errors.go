package content

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLesson is returned when a lesson ID is not in the catalogue.
	ErrUnknownLesson = errors.New("unknown lesson")

	ErrDuplicateID     = errors.New("duplicate lesson id")
	ErrNoExercises     = errors.New("lesson has no exercises")
	ErrCorrectNotOffer = errors.New("correct option is not one of the options")
	ErrDuplicateOption = errors.New("options must differ")
	ErrMissingBlank    = errors.New("sentence must contain exactly one blank")
	ErrUnknownIcon     = errors.New("unknown icon")
)

// ValidationError reports a catalogue entry that breaks a content invariant.
type ValidationError struct {
	LessonID string
	Index    int // exercise index, -1 when the error is lesson-level
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("lesson %q: %v", e.LessonID, e.Err)
	}
	return fmt.Sprintf("lesson %q exercise %d: %v", e.LessonID, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SchemaError indicates the catalogue document does not match the JSON schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalogue schema validation failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
