package lesson

import (
	"fmt"

	"github.com/abhisek/wegbereiter/internal/content"
)

const (
	praiseText     = "Sehr gut!"
	correctionText = "Fast! Richtig wäre: "
)

// CorrectAnswerText describes the right answer to ex for the correction line.
func CorrectAnswerText(ex content.Exercise) string {
	switch e := ex.(type) {
	case content.Identify:
		if e.IsCorrect {
			return e.Word
		}
		return fmt.Sprintf("„%s“ ist falsch geschrieben", e.Word)
	case content.Complete:
		return fmt.Sprintf("%s (%s)", e.CorrectOption, e.Word())
	}
	return ""
}
