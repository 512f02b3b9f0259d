package content

import (
	"encoding/json"
	"fmt"
)

// catalogDoc is the on-disk catalogue format.
type catalogDoc struct {
	Lessons []lessonDoc `json:"lessons"`
}

type lessonDoc struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Icon              Icon          `json:"icon"`
	ExampleCategories []categoryDoc `json:"example_categories"`
	Exercises         []exerciseDoc `json:"exercises"`
}

type categoryDoc struct {
	Title    string       `json:"title"`
	Examples []exampleDoc `json:"examples"`
}

type exampleDoc struct {
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
}

// exerciseDoc is the flat wire shape; Task selects which fields apply.
type exerciseDoc struct {
	Task          Kind     `json:"task"`
	Sentence      string   `json:"sentence"`
	Word          string   `json:"word,omitempty"`
	IsCorrect     *bool    `json:"is_correct,omitempty"`
	WordParts     []string `json:"word_parts,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectOption string   `json:"correct_option,omitempty"`
}

func (d lessonDoc) lesson() (Lesson, error) {
	l := Lesson{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
	}
	for _, c := range d.ExampleCategories {
		cat := ExampleCategory{Title: c.Title}
		for _, e := range c.Examples {
			cat.Examples = append(cat.Examples, Example(e))
		}
		l.ExampleCategories = append(l.ExampleCategories, cat)
	}
	for i, e := range d.Exercises {
		ex, err := e.exercise()
		if err != nil {
			return Lesson{}, &ValidationError{LessonID: d.ID, Index: i, Err: err}
		}
		l.Exercises = append(l.Exercises, ex)
	}
	return l, nil
}

func (d exerciseDoc) exercise() (Exercise, error) {
	switch d.Task {
	case KindIdentify:
		if d.IsCorrect == nil {
			return nil, fmt.Errorf("identify exercise %q has no is_correct flag", d.Word)
		}
		return Identify{Word: d.Word, IsCorrect: *d.IsCorrect, Sentence: d.Sentence}, nil
	case KindComplete:
		if len(d.WordParts) != 2 || len(d.Options) != 2 {
			return nil, fmt.Errorf("complete exercise needs two word parts and two options")
		}
		return Complete{
			Sentence:      d.Sentence,
			WordParts:     [2]string(d.WordParts),
			Options:       [2]string(d.Options),
			CorrectOption: d.CorrectOption,
		}, nil
	default:
		return nil, fmt.Errorf("unknown exercise task %q", d.Task)
	}
}

// MarshalJSON writes the catalogue in the same format Load reads.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	doc := catalogDoc{Lessons: make([]lessonDoc, 0, len(c.lessons))}
	for _, l := range c.lessons {
		ld := lessonDoc{
			ID:                l.ID,
			Title:             l.Title,
			Description:       l.Description,
			Icon:              l.Icon,
			ExampleCategories: []categoryDoc{},
		}
		for _, cat := range l.ExampleCategories {
			cd := categoryDoc{Title: cat.Title, Examples: []exampleDoc{}}
			for _, e := range cat.Examples {
				cd.Examples = append(cd.Examples, exampleDoc(e))
			}
			ld.ExampleCategories = append(ld.ExampleCategories, cd)
		}
		for _, ex := range l.Exercises {
			switch e := ex.(type) {
			case Identify:
				ok := e.IsCorrect
				ld.Exercises = append(ld.Exercises, exerciseDoc{Task: KindIdentify, Word: e.Word, IsCorrect: &ok, Sentence: e.Sentence})
			case Complete:
				ld.Exercises = append(ld.Exercises, exerciseDoc{
					Task:          KindComplete,
					Sentence:      e.Sentence,
					WordParts:     e.WordParts[:],
					Options:       e.Options[:],
					CorrectOption: e.CorrectOption,
				})
			}
		}
		doc.Lessons = append(doc.Lessons, ld)
	}
	return json.Marshal(doc)
}
