package lessons

// Schema is a named JSON schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// SimpleLessonSchema describes a submission that is already a canonical
// lesson and only needs pass-through validation.
var SimpleLessonSchema = &Schema{
	Name:        "simple-lesson",
	Description: "An already-canonical lesson with number, title and practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"number": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"title": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"section": map[string]any{
				"type": "string",
			},
			"practice": map[string]any{
				"type":  "array",
				"items": questionSchema,
			},
			"parts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"partNumber": map[string]any{"type": "integer"},
						"partTitle":  map[string]any{"type": "string"},
						"questions": map[string]any{
							"type":  "array",
							"items": questionSchema,
						},
					},
					"required": []any{"partNumber", "questions"},
				},
			},
			"totalParts": map[string]any{
				"type": "integer",
			},
		},
		"required": []any{"number", "title", "practice"},
	},
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type":          map[string]any{"type": "string"},
		"correctAnswer": map[string]any{"type": "string"},
		"options": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string"},
				},
				"required": []any{"id", "text"},
			},
		},
		"pairs": map[string]any{
			"type": []any{"object", "array"},
		},
		"answers":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"wrongOptions": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"words":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"feedback": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":   map[string]any{"type": "string"},
				"incorrect": map[string]any{"type": "string"},
			},
		},
	},
}
