package lessons

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// FeedbackFor derives the feedback of a raw exercise. A structured feedback
// object is passed through as-is; otherwise a non-empty explanation is
// expanded into a correct/incorrect pair. Returns nil when neither exists.
func FeedbackFor(exercise map[string]any) *Feedback {
	if fb, ok := exercise["feedback"].(map[string]any); ok {
		return feedbackFromMap(fb)
	}
	if explanation, ok := exercise["explanation"].(string); ok && explanation != "" {
		return &Feedback{
			Correct:   "Correct! " + explanation,
			Incorrect: "Incorrect. " + explanation,
		}
	}
	return nil
}

func feedbackFromMap(m map[string]any) *Feedback {
	f := &Feedback{}
	for k, v := range m {
		s, isString := v.(string)
		switch {
		case k == "correct" && isString:
			f.Correct = s
		case k == "incorrect" && isString:
			f.Incorrect = s
		default:
			if f.Extra == nil {
				f.Extra = make(map[string]any)
			}
			f.Extra[k] = v
		}
	}
	return f
}

func (f Feedback) toMap() map[string]any {
	out := make(map[string]any, len(f.Extra)+2)
	for k, v := range f.Extra {
		out[k] = v
	}
	if _, ok := out["correct"]; !ok {
		out["correct"] = f.Correct
	}
	if _, ok := out["incorrect"]; !ok {
		out["incorrect"] = f.Incorrect
	}
	return out
}

func (f Feedback) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.toMap())
}

func (f *Feedback) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*f = *feedbackFromMap(m)
	return nil
}

func (f Feedback) MarshalYAML() (interface{}, error) {
	return f.toMap(), nil
}

func (f *Feedback) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	m, _ = stringKeys(m).(map[string]any)
	*f = *feedbackFromMap(m)
	return nil
}
