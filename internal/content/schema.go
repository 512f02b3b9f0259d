package content

// catalogSchema is the JSON schema every lesson catalogue document must satisfy.
// Cross-field rules (correct option among options, unique IDs) are checked in
// validate after decoding.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    lessonSchema,
		},
	},
	"required":             []any{"lessons"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"icon": map[string]any{
			"type": "string",
			"enum": []any{string(IconBook), string(IconLightbulb), string(IconPuzzle)},
		},
		"example_categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string", "minLength": 1},
					"examples": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"word":        map[string]any{"type": "string", "minLength": 1},
								"explanation": map[string]any{"type": "string"},
							},
							"required":             []any{"word", "explanation"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"title", "examples"},
				"additionalProperties": false,
			},
		},
		"exercises": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"oneOf": []any{identifySchema, completeSchema},
			},
		},
	},
	"required":             []any{"id", "title", "description", "icon", "exercises"},
	"additionalProperties": false,
}

var identifySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"task":       map[string]any{"const": string(KindIdentify)},
		"word":       map[string]any{"type": "string", "minLength": 1},
		"is_correct": map[string]any{"type": "boolean"},
		"sentence":   map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"task", "word", "is_correct", "sentence"},
	"additionalProperties": false,
}

var completeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"task": map[string]any{"const": string(KindComplete)},
		"word_parts": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
			"maxItems": 2,
		},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": 2,
			"maxItems": 2,
		},
		"correct_option": map[string]any{"type": "string", "minLength": 1},
		"sentence":       map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"task", "word_parts", "options", "correct_option", "sentence"},
	"additionalProperties": false,
}
