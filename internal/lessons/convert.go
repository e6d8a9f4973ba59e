package lessons

import (
	"fmt"
	"sort"
	"strings"
)

// Report counts what happened to the exercises of one submission.
type Report struct {
	Converted       int
	Dropped         int
	AnswerFallbacks int
}

// converter turns raw exercise records into canonical questions. It is
// request scoped and not safe for concurrent use.
type converter struct {
	cfg    Config
	report Report
}

// narrative describes a wrapper kind whose question text is prefixed with a
// bracketed tag and the narrative read from field.
type narrative struct {
	tag   string
	field string
}

var narrativeKinds = map[string]narrative{
	"scenario":         {tag: "Scenario", field: "scene"},
	"reverse-scenario": {tag: "Reverse Scenario", field: "scene"},
	"ethical-dilemma":  {tag: "Ethical Dilemma", field: "dilemma"},
	"case-analysis":    {tag: "Case Analysis", field: "case"},
	"boss-scenario":    {tag: "Boss Challenge", field: "scene"},
}

// convertComprehensive converts one exercise of a comprehensive content screen.
// A nil question without error means the exercise is intentionally dropped.
func (c *converter) convertComprehensive(ex map[string]any) (*Question, error) {
	typ, _ := ex["type"].(string)
	if ex == nil || typ == "" {
		return c.drop(), nil
	}
	if kind, ok := narrativeKinds[typ]; ok {
		text := narrate(kind.tag, stringFromAny(ex[kind.field]), stringFromAny(ex["question"]))
		return c.keep(c.multipleChoice(typ, ex, ex, text))
	}
	switch typ {
	case "multiple-choice":
		return c.keep(c.multipleChoice(typ, ex, ex, stringFromAny(ex["question"])))
	case "true-false":
		return c.keep(trueFalse(ex), nil)
	case "matching":
		return c.keep(matching(ex), nil)
	case "fill-in":
		return c.keep(fillIn(ex), nil)
	case "micro-sim":
		return c.microSim(ex)
	case "build-sentence":
		return c.keep(buildSentence(ex, "Arrange the words to make a sentence"), nil)
	default:
		return c.drop(), nil
	}
}

func (c *converter) keep(q *Question, err error) (*Question, error) {
	if err != nil {
		return nil, err
	}
	if q == nil {
		return c.drop(), nil
	}
	c.report.Converted++
	return q, nil
}

func (c *converter) drop() *Question {
	c.report.Dropped++
	return nil
}

// multipleChoice builds a multiple-choice question whose options and correct
// reference are read from src while feedback comes from ex.
func (c *converter) multipleChoice(typ string, ex, src map[string]any, text string) (*Question, error) {
	raw := sliceAny(src["options"])
	answer, err := c.resolveAnswer(typ, src["correct"], raw)
	if err != nil {
		return nil, err
	}
	return &Question{
		Type:          TypeMultipleChoice,
		Question:      text,
		Options:       letterOptions(raw),
		CorrectAnswer: answer,
		Feedback:      FeedbackFor(ex),
	}, nil
}

// microSim keeps only the first step of a multi-step simulation.
func (c *converter) microSim(ex map[string]any) (*Question, error) {
	steps := sliceAny(ex["steps"])
	if len(steps) == 0 {
		return c.drop(), nil
	}
	first := mapFromAny(steps[0])
	text := fmt.Sprintf("[Micro Simulation - Step 1]\n%s\n\n%s",
		stringFromAny(first["situation"]), stringFromAny(first["question"]))
	return c.keep(c.multipleChoice("micro-sim", ex, first, text))
}

// resolveAnswer maps a raw correct reference to an option letter:
// a single uppercase letter is used verbatim, otherwise the position of the
// value inside the raw options is lettered, otherwise "A".
func (c *converter) resolveAnswer(typ string, correct any, raw []any) (string, error) {
	if s, ok := correct.(string); ok && len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return s, nil
	}
	if correct != nil {
		want := stringFromAny(correct)
		for i, o := range raw {
			if optionText(o) == want {
				return Letter(i), nil
			}
		}
	}
	if c.cfg.StrictAnswers {
		return "", &AmbiguousAnswerError{ExerciseType: typ, Correct: correct}
	}
	c.report.AnswerFallbacks++
	return "A", nil
}

// Letter returns the option id for a 0-based position.
func Letter(i int) string {
	return string(rune('A' + i))
}

// letterOptions relabels options A, B, C... by position, discarding any
// label the source supplied.
func letterOptions(raw []any) []Option {
	out := make([]Option, 0, len(raw))
	for i, o := range raw {
		out = append(out, Option{ID: Letter(i), Text: optionText(o)})
	}
	return out
}

func optionText(o any) string {
	if m, ok := o.(map[string]any); ok {
		return stringFromAny(m["text"])
	}
	return stringFromAny(o)
}

func narrate(tag, story, question string) string {
	switch {
	case story == "":
		return question
	case tag == "":
		return story + "\n\n" + question
	default:
		return "[" + tag + "]\n" + story + "\n\n" + question
	}
}

func trueFalse(ex map[string]any) *Question {
	answer := "B"
	switch v := ex["correct"].(type) {
	case string:
		if strings.EqualFold(strings.TrimSpace(v), "true") {
			answer = "A"
		}
	case bool:
		if v {
			answer = "A"
		}
	}
	return &Question{
		Type:     TypeMultipleChoice,
		Question: orDefault(firstString(ex["question"], ex["statement"]), "True or False?"),
		Options: []Option{
			{ID: "A", Text: "True"},
			{ID: "B", Text: "False"},
		},
		CorrectAnswer: answer,
		Feedback:      FeedbackFor(ex),
	}
}

// matching accepts a ready pair list, parallel options/correct arrays, or a
// "key: value; key: value" string.
func matching(ex map[string]any) *Question {
	var pairs *Pairs
	switch {
	case sliceAny(ex["pairs"]) != nil:
		pairs = &Pairs{Form: PairsList, Items: []Pair{}}
		for _, it := range sliceAny(ex["pairs"]) {
			m := mapFromAny(it)
			term := firstString(m["term"], m["left"])
			def := firstString(m["definition"], m["right"])
			if term == "" || def == "" {
				continue
			}
			pairs.Set(term, def)
		}
	case mapFromAny(ex["pairs"]) != nil:
		pairs = objectPairs(mapFromAny(ex["pairs"]))
	case sliceAny(ex["correct"]) != nil && sliceAny(ex["options"]) != nil:
		keys, values := sliceAny(ex["options"]), sliceAny(ex["correct"])
		pairs = NewObjectPairs()
		for i := 0; i < len(keys) && i < len(values); i++ {
			if !truthy(values[i]) {
				continue
			}
			pairs.Set(stringFromAny(keys[i]), stringFromAny(values[i]))
		}
	default:
		s, _ := ex["correct"].(string)
		pairs = ParsePairs(s)
	}
	return &Question{
		Type:     TypeMatching,
		Question: stringFromAny(ex["question"]),
		Pairs:    pairs,
		Feedback: FeedbackFor(ex),
	}
}

// fillIn reads accepted answers from correct, answer or answers (first
// present wins) and wrong options from options or wrongOptions, minus any
// accepted answer.
func fillIn(ex map[string]any) *Question {
	var answers []string
	switch v := firstTruthy(ex["correct"], ex["answer"], ex["answers"]).(type) {
	case nil:
		answers = []string{}
	case []any:
		answers = stringsFromAny(v)
	default:
		answers = []string{stringFromAny(v)}
	}
	accepted := make(map[string]bool, len(answers))
	for _, a := range answers {
		accepted[a] = true
	}

	wrong := []string{}
	for _, o := range stringsFromAny(firstTruthy(ex["options"], ex["wrongOptions"])) {
		if !accepted[o] {
			wrong = append(wrong, o)
		}
	}

	q := &Question{
		Type:          TypeFillInBlank,
		Sentence:      firstString(ex["question"], ex["sentence"]),
		Answers:       answers,
		FillInOptions: append(append([]string{}, answers...), wrong...),
		WrongOptions:  wrong,
		Feedback:      FeedbackFor(ex),
	}
	if len(answers) > 0 {
		q.CorrectAnswer = answers[0]
	}
	return q
}

func buildSentence(ex map[string]any, defaultPrompt string) *Question {
	words := stringsFromAny(ex["words"])
	if words == nil {
		words = []string{}
	}
	sentence := stringFromAny(ex["correct"])
	if parts := stringsFromAny(ex["correct"]); parts != nil {
		sentence = strings.Join(parts, " ")
	}
	return &Question{
		Type:            TypeSentenceBuilding,
		Question:        orDefault(stringFromAny(ex["prompt"]), defaultPrompt),
		Words:           words,
		CorrectSentence: sentence,
		Feedback:        FeedbackFor(ex),
	}
}

// objectPairs converts an already-keyed pair object. Decoded objects carry no
// key order, so keys are sorted for a stable result.
func objectPairs(m map[string]any) *Pairs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := NewObjectPairs()
	for _, k := range keys {
		v := stringFromAny(m[k])
		if strings.TrimSpace(k) == "" || v == "" {
			continue
		}
		out.Set(k, v)
	}
	return out
}
