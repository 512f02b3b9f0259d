package session

import (
	"strconv"

	"github.com/abhisek/wegbereiter/internal/content"
)

// Answer is a learner's submission. Claim answers Identify exercises and
// Choice answers Complete exercises.
type Answer interface {
	// Kind returns the exercise kind this answer applies to.
	Kind() content.Kind

	String() string

	answer()
}

// Claim is the learner's verdict that the shown word is spelled correctly.
type Claim bool

func (Claim) Kind() content.Kind { return content.KindIdentify }
func (c Claim) String() string   { return strconv.FormatBool(bool(c)) }
func (Claim) answer()            {}

// Choice is the option the learner picked to fill the blank.
type Choice string

func (Choice) Kind() content.Kind { return content.KindComplete }
func (c Choice) String() string   { return string(c) }
func (Choice) answer()            {}

// Evaluate checks a against ex. ok is false when the answer does not fit the
// exercise kind, in which case correct is meaningless.
func Evaluate(ex content.Exercise, a Answer) (correct, ok bool) {
	switch e := ex.(type) {
	case content.Identify:
		c, isClaim := a.(Claim)
		if !isClaim {
			return false, false
		}
		return bool(c) == e.IsCorrect, true
	case content.Complete:
		c, isChoice := a.(Choice)
		if !isChoice {
			return false, false
		}
		return string(c) == e.CorrectOption, true
	}
	return false, false
}

// Expected returns the answer that would be scored correct for ex.
func Expected(ex content.Exercise) Answer {
	switch e := ex.(type) {
	case content.Identify:
		return Claim(e.IsCorrect)
	case content.Complete:
		return Choice(e.CorrectOption)
	}
	return nil
}
