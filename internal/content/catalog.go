package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/lessons.json
var builtinCatalog []byte

// Catalog is an ordered, immutable collection of lessons.
type Catalog struct {
	lessons []Lesson
	byID    map[string]int
}

// NewCatalog validates lessons and builds a catalogue preserving their order.
func NewCatalog(lessons []Lesson) (*Catalog, error) {
	byID := make(map[string]int, len(lessons))
	for i, l := range lessons {
		if _, dup := byID[l.ID]; dup {
			return nil, &ValidationError{LessonID: l.ID, Index: -1, Err: ErrDuplicateID}
		}
		if err := validateLesson(l); err != nil {
			return nil, err
		}
		byID[l.ID] = i
	}

	owned := make([]Lesson, len(lessons))
	for i, l := range lessons {
		owned[i] = l.Clone()
	}
	return &Catalog{lessons: owned, byID: byID}, nil
}

// Lessons returns copies of the lessons in catalogue order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.Clone()
	}
	return out
}

// Lesson looks up a lesson by ID and returns a copy.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i].Clone(), true
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(bytes.NewReader(builtinCatalog))
	if err != nil {
		panic(fmt.Sprintf("content: built-in catalogue is invalid: %v", err))
	}
	return c
})

// Default returns the built-in German spelling catalogue.
func Default() *Catalog {
	return defaultCatalog()
}

// LoadFile reads a catalogue document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON catalogue document, checks it against the catalogue
// schema and the lesson invariants.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var doc catalogDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	lessons := make([]Lesson, 0, len(doc.Lessons))
	for _, ld := range doc.Lessons {
		l, err := ld.lesson()
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return NewCatalog(lessons)
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalogue schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse catalogue schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://lesson-catalogue.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add catalogue schema: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile catalogue schema: %w", err)
	}
	return s, nil
})

func validateLesson(l Lesson) error {
	if !l.Icon.Valid() {
		return &ValidationError{LessonID: l.ID, Index: -1, Err: fmt.Errorf("%w: %q", ErrUnknownIcon, l.Icon)}
	}
	if len(l.Exercises) == 0 {
		return &ValidationError{LessonID: l.ID, Index: -1, Err: ErrNoExercises}
	}
	for i, ex := range l.Exercises {
		if err := validateExercise(ex); err != nil {
			return &ValidationError{LessonID: l.ID, Index: i, Err: err}
		}
	}
	return nil
}

func validateExercise(ex Exercise) error {
	switch e := ex.(type) {
	case Identify:
		if e.Word == "" {
			return fmt.Errorf("identify exercise has no word")
		}
	case Complete:
		if e.Options[0] == e.Options[1] {
			return ErrDuplicateOption
		}
		if e.CorrectOption != e.Options[0] && e.CorrectOption != e.Options[1] {
			return fmt.Errorf("%w: %q not in %q", ErrCorrectNotOffer, e.CorrectOption, e.Options)
		}
		if strings.Count(e.Sentence, Blank) != 1 {
			return ErrMissingBlank
		}
	default:
		return fmt.Errorf("unsupported exercise type %T", ex)
	}
	return nil
}
