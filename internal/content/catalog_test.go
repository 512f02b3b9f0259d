package content

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 3, c.Len())

	ids := make([]string, 0, c.Len())
	for _, l := range c.Lessons() {
		ids = append(ids, l.ID)
		assert.Equal(t, 6, l.ExerciseCount(), "lesson %s", l.ID)
		assert.True(t, l.Icon.Valid(), "lesson %s icon", l.ID)
	}
	assert.Equal(t, []string{"lesson1", "lesson2", "lesson3"}, ids)
}

func TestDefaultCatalog_Content(t *testing.T) {
	l, ok := Default().Lesson("lesson1")
	require.True(t, ok)
	assert.Equal(t, "Kurzer Vokal, doppelter Konsonant", l.Title)
	assert.Equal(t, IconBook, l.Icon)
	require.Len(t, l.ExampleCategories, 3)
	assert.Equal(t, "Kamm", l.ExampleCategories[0].Examples[0].Word)

	first, ok := l.Exercises[0].(Complete)
	require.True(t, ok, "first exercise should be Complete, got %T", l.Exercises[0])
	assert.Equal(t, [2]string{"s", "ss"}, first.Options)
	assert.Equal(t, "ss", first.CorrectOption)
	assert.Equal(t, "kasse", first.Word())

	bett, ok := l.Exercises[2].(Identify)
	require.True(t, ok)
	assert.Equal(t, "Bett", bett.Word)
	assert.True(t, bett.IsCorrect)

	l3, ok := Default().Lesson("lesson3")
	require.True(t, ok)
	katter := l3.Exercises[1].(Identify)
	assert.False(t, katter.IsCorrect)
	assert.Empty(t, l3.ExampleCategories)
}

func TestLesson_UnknownID(t *testing.T) {
	_, ok := Default().Lesson("lesson99")
	assert.False(t, ok)
}

func TestLessons_ReturnsCopy(t *testing.T) {
	c := Default()
	ls := c.Lessons()
	ls[0].Title = "changed"

	l, _ := c.Lesson("lesson1")
	assert.NotEqual(t, "changed", l.Title)
}

func TestCatalog_LessonsAreDeepCopies(t *testing.T) {
	c := Default()
	orig, ok := c.Lesson("lesson1")
	require.True(t, ok)
	require.NotEmpty(t, orig.ExampleCategories)

	tamper := func(l *Lesson) {
		l.Exercises[0] = Identify{Word: "Bett"}
		l.ExampleCategories[0].Examples[0] = Example{Word: "changed"}
	}

	ls := c.Lessons()
	tamper(&ls[0])
	got, _ := c.Lesson("lesson1")
	assert.Equal(t, orig, got)

	one, _ := c.Lesson("lesson1")
	tamper(&one)
	got, _ = c.Lesson("lesson1")
	assert.Equal(t, orig, got)
}

func TestNewCatalog_OwnsItsLessons(t *testing.T) {
	in := []Lesson{{
		ID:        "a",
		Title:     "A",
		Icon:      IconBook,
		Exercises: []Exercise{Identify{Word: "Bett", IsCorrect: true, Sentence: "Ins Bett."}},
		ExampleCategories: []ExampleCategory{
			{Title: "tt", Examples: []Example{{Word: "Bett", Explanation: "kurzes e"}}},
		},
	}}
	c, err := NewCatalog(in)
	require.NoError(t, err)

	in[0].Exercises[0] = Identify{Word: "Katter"}
	in[0].ExampleCategories[0].Examples[0].Word = "Katter"

	l, ok := c.Lesson("a")
	require.True(t, ok)
	assert.Equal(t, Identify{Word: "Bett", IsCorrect: true, Sentence: "Ins Bett."}, l.Exercises[0])
	assert.Equal(t, "Bett", l.ExampleCategories[0].Examples[0].Word)
}

func TestComplete_Parts(t *testing.T) {
	e := Complete{Sentence: "Hier ist kein Pla_ frei.", WordParts: [2]string{"Pla", ""}, Options: [2]string{"z", "tz"}, CorrectOption: "tz"}
	before, after := e.Parts()
	assert.Equal(t, "Hier ist kein Pla", before)
	assert.Equal(t, " frei.", after)
	assert.Equal(t, "Platz", e.Word())
}

func TestIdentify_Masked(t *testing.T) {
	e := Identify{Word: "glücklich", IsCorrect: true, Sentence: "Ich bin sehr glücklich."}
	assert.Equal(t, "Ich bin sehr _________.", e.Masked())
}

func TestNewCatalog_Invariants(t *testing.T) {
	valid := Complete{Sentence: "Die Ka_e ist leer.", WordParts: [2]string{"Ka", "e"}, Options: [2]string{"s", "ss"}, CorrectOption: "ss"}

	tests := []struct {
		name    string
		lessons []Lesson
		wantErr error
	}{
		{
			name:    "valid",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: IconBook, Exercises: []Exercise{valid}}},
		},
		{
			name: "duplicate id",
			lessons: []Lesson{
				{ID: "a", Title: "A", Icon: IconBook, Exercises: []Exercise{valid}},
				{ID: "a", Title: "B", Icon: IconBook, Exercises: []Exercise{valid}},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "no exercises",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: IconBook}},
			wantErr: ErrNoExercises,
		},
		{
			name: "correct option not offered",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: IconBook, Exercises: []Exercise{
				Complete{Sentence: "x_y", Options: [2]string{"s", "ss"}, CorrectOption: "ß"},
			}}},
			wantErr: ErrCorrectNotOffer,
		},
		{
			name: "identical options",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: IconBook, Exercises: []Exercise{
				Complete{Sentence: "x_y", Options: [2]string{"s", "s"}, CorrectOption: "s"},
			}}},
			wantErr: ErrDuplicateOption,
		},
		{
			name: "missing blank",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: IconBook, Exercises: []Exercise{
				Complete{Sentence: "no gap", Options: [2]string{"s", "ss"}, CorrectOption: "s"},
			}}},
			wantErr: ErrMissingBlank,
		},
		{
			name:    "unknown icon",
			lessons: []Lesson{{ID: "a", Title: "A", Icon: "rocket", Exercises: []Exercise{valid}}},
			wantErr: ErrUnknownIcon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.lessons)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
		})
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty lessons", `{"lessons": []}`},
		{"unknown task", `{"lessons":[{"id":"a","title":"A","description":"","icon":"book","exercises":[{"task":"spell","sentence":"x"}]}]}`},
		{"three options", `{"lessons":[{"id":"a","title":"A","description":"","icon":"book","exercises":[{"task":"complete","sentence":"x_","word_parts":["x",""],"options":["a","b","c"],"correct_option":"a"}]}]}`},
		{"identify without flag", `{"lessons":[{"id":"a","title":"A","description":"","icon":"book","exercises":[{"task":"identify","word":"Bett","sentence":"Bett"}]}]}`},
		{"extra field", `{"lessons":[], "version": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			var serr *SchemaError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"lessons":`))
	require.Error(t, err)
}

func TestLoad_InvariantViolation(t *testing.T) {
	doc := `{"lessons":[{"id":"a","title":"A","description":"","icon":"book","exercises":[
		{"task":"complete","sentence":"Die Ka_e","word_parts":["Ka","e"],"options":["s","ss"],"correct_option":"tz"}]}]}`
	_, err := Load(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrCorrectNotOffer)
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	raw, err := json.Marshal(Default())
	require.NoError(t, err)

	c, err := Load(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, Default().Lessons(), c.Lessons())
}
