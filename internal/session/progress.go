package session

import "math"

// CompletionPercentage returns round(100 * score / total), or 0 when total is 0.
func CompletionPercentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// ProgressFraction returns index / total in [0, 1], or 0 when total is 0.
func ProgressFraction(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(index) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SummaryMessage returns the encouragement shown on the summary for a
// completion percentage.
func SummaryMessage(percentage int) string {
	switch {
	case percentage > 80:
		return "Exzellent! Du bist ein wahrer Wegbereiter!"
	case percentage > 50:
		return "Gut gemacht! Übung macht den Meister."
	default:
		return "Weiter so! Jeder Schritt zählt."
	}
}
