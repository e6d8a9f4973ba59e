package lessons

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Format names the recognized submission shapes.
type Format string

const (
	FormatSimple        Format = "simple"
	FormatStaged        Format = "stage-based"
	FormatComprehensive Format = "comprehensive"
)

// Submission is the closed set of recognized submission shapes; Detect is
// the only constructor.
type Submission interface {
	Format() Format
	submission()
}

// SimpleSubmission is an already-canonical {number, title, practice} lesson.
type SimpleSubmission struct {
	Raw map[string]any
}

// StagedSubmission carries {lessons: [{lessonNumber, title, stages}]}.
type StagedSubmission struct {
	Lessons []map[string]any
}

// ComprehensiveSubmission is the screen-based format with full curriculum metadata.
type ComprehensiveSubmission struct {
	Raw map[string]any
}

func (SimpleSubmission) Format() Format        { return FormatSimple }
func (StagedSubmission) Format() Format        { return FormatStaged }
func (ComprehensiveSubmission) Format() Format { return FormatComprehensive }

func (SimpleSubmission) submission()        {}
func (StagedSubmission) submission()        {}
func (ComprehensiveSubmission) submission() {}

// DecodeSubmission parses a raw submission body. JSON is tried first and YAML
// is accepted as a fallback; YAML mapping keys are converted to strings so
// both paths yield the same tree shape.
func DecodeSubmission(data []byte) (any, error) {
	var v any
	jsonErr := json.Unmarshal(data, &v)
	if jsonErr == nil {
		return v, nil
	}
	var y any
	if err := yaml.Unmarshal(data, &y); err != nil || y == nil {
		return nil, &InvalidFormatError{Reason: "submission is neither JSON nor YAML", Err: jsonErr}
	}
	return stringKeys(y), nil
}

// Detect classifies a decoded submission. The comprehensive check runs
// first, so a body with sectionId and contentScreens is comprehensive even
// when it also has a lessons key.
func Detect(raw any) (Submission, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &InvalidFormatError{Reason: "submission must be an object"}
	}
	if truthy(m["sectionId"]) && truthy(m["contentScreens"]) {
		return ComprehensiveSubmission{Raw: m}, nil
	}
	if arr, ok := m["lessons"].([]any); ok {
		staged := StagedSubmission{Lessons: make([]map[string]any, 0, len(arr))}
		for _, l := range arr {
			lm := mapFromAny(l)
			if lm == nil {
				return nil, &InvalidFormatError{Reason: "lessons entries must be objects"}
			}
			staged.Lessons = append(staged.Lessons, lm)
		}
		return staged, nil
	}
	if truthy(m["number"]) && truthy(m["title"]) && truthy(m["practice"]) {
		return SimpleSubmission{Raw: m}, nil
	}
	return nil, &InvalidFormatError{Reason: "expected a comprehensive, stage-based or simple lesson"}
}
