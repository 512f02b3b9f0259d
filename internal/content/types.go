package content

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Blank marks the gap in an exercise sentence.
const Blank = "_"

// Icon selects one of the fixed lesson icons. Rendering is owned by the UI.
type Icon string

const (
	IconBook      Icon = "book"
	IconLightbulb Icon = "lightbulb"
	IconPuzzle    Icon = "puzzle"
)

// Valid reports whether i is one of the known icons.
func (i Icon) Valid() bool {
	switch i {
	case IconBook, IconLightbulb, IconPuzzle:
		return true
	}
	return false
}

// Kind identifies the exercise variant.
type Kind string

const (
	KindIdentify Kind = "identify"
	KindComplete Kind = "complete"
)

// Exercise is a single question. Implemented only by Identify and Complete.
type Exercise interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Prompt returns the display sentence.
	Prompt() string

	exercise()
}

// Identify asks whether Word is spelled correctly.
type Identify struct {
	Word      string
	IsCorrect bool
	Sentence  string
}

func (Identify) Kind() Kind       { return KindIdentify }
func (e Identify) Prompt() string { return e.Sentence }
func (Identify) exercise()        {}

// Masked returns the sentence with the target word blanked out.
func (e Identify) Masked() string {
	return strings.Replace(e.Sentence, e.Word, strings.Repeat(Blank, utf8.RuneCountInString(e.Word)), 1)
}

// Complete asks which of two options fills the blank in Sentence.
type Complete struct {
	Sentence      string
	WordParts     [2]string
	Options       [2]string
	CorrectOption string
}

func (Complete) Kind() Kind       { return KindComplete }
func (e Complete) Prompt() string { return e.Sentence }
func (Complete) exercise()        {}

// Parts splits the sentence around its blank.
func (e Complete) Parts() (before, after string) {
	before, after, _ = strings.Cut(e.Sentence, Blank)
	return before, after
}

// Word returns the completed word, e.g. "Ka" + "ss" + "e".
func (e Complete) Word() string {
	return e.WordParts[0] + e.CorrectOption + e.WordParts[1]
}

// Example is a single reference word with its explanation.
type Example struct {
	Word        string
	Explanation string
}

// ExampleCategory groups related examples under a title.
type ExampleCategory struct {
	Title    string
	Examples []Example
}

// Lesson is a named unit of instruction.
type Lesson struct {
	ID                string
	Title             string
	Description       string
	Icon              Icon
	Exercises         []Exercise
	ExampleCategories []ExampleCategory
}

// ExerciseCount returns the number of exercises in the lesson.
func (l Lesson) ExerciseCount() int {
	return len(l.Exercises)
}

// Clone returns a deep copy of l. Exercises are values, so copying the
// slices is enough to detach the copy from l.
func (l Lesson) Clone() Lesson {
	l.Exercises = slices.Clone(l.Exercises)
	l.ExampleCategories = slices.Clone(l.ExampleCategories)
	for i, c := range l.ExampleCategories {
		l.ExampleCategories[i].Examples = slices.Clone(c.Examples)
	}
	return l
}
