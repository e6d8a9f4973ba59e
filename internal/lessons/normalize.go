package lessons

import "fmt"

// Result is the outcome of normalizing one submission.
type Result struct {
	Format  Format
	Lessons []Lesson
	Report  Report
}

// Normalize detects the shape of a decoded submission and converts it into
// canonical lessons.
func Normalize(raw any, cfg Config) (*Result, error) {
	sub, err := Detect(raw)
	if err != nil {
		return nil, err
	}
	return NormalizeSubmission(sub, cfg)
}

// NormalizeSubmission converts an already-detected submission.
func NormalizeSubmission(sub Submission, cfg Config) (*Result, error) {
	c := &converter{cfg: cfg}
	var (
		lessons []Lesson
		err     error
	)
	switch s := sub.(type) {
	case ComprehensiveSubmission:
		var l Lesson
		l, err = c.comprehensive(s)
		lessons = []Lesson{l}
	case StagedSubmission:
		lessons, err = c.staged(s)
	case SimpleSubmission:
		lessons, err = simple(s)
	default:
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("unsupported submission %T", sub)}
	}
	if err != nil {
		return nil, err
	}
	return &Result{Format: sub.Format(), Lessons: lessons, Report: c.report}, nil
}

func (c *converter) comprehensive(s ComprehensiveSubmission) (Lesson, error) {
	raw := s.Raw
	practice := []Question{}
	for _, screen := range sliceAny(raw["contentScreens"]) {
		for _, ex := range sliceAny(mapFromAny(screen)["exercises"]) {
			q, err := c.convertComprehensive(mapFromAny(ex))
			if err != nil {
				return Lesson{}, err
			}
			if q != nil {
				practice = append(practice, *q)
			}
		}
	}

	lessonID, _ := raw["lessonId"].(string)
	lessonPart := intFromAny(raw["lessonPart"], 0)
	l := Lesson{
		Number:   LessonNumber(lessonID, lessonPart),
		Title:    orDefault(stringFromAny(raw["lessonTitle"]), "Untitled Lesson"),
		Section:  orDefault(stringFromAny(raw["sectionId"]), "A"),
		Practice: practice,

		SectionID:       stringFromAny(raw["sectionId"]),
		SectionTitle:    stringFromAny(raw["sectionTitle"]),
		UnitID:          stringFromAny(raw["unitId"]),
		UnitTitle:       stringFromAny(raw["unitTitle"]),
		LessonID:        lessonID,
		LessonTitle:     stringFromAny(raw["lessonTitle"]),
		LessonType:      stringFromAny(raw["lessonType"]),
		LessonPart:      lessonPart,
		LessonPartTitle: stringFromAny(raw["lessonPartTitle"]),
		Objective:       stringFromAny(raw["objective"]),
		ContentScreens:  sliceAny(raw["contentScreens"]),
	}
	if g := mapFromAny(raw["gamification"]); g != nil {
		l.Gamification = g
	}
	return l, nil
}

func (c *converter) staged(s StagedSubmission) ([]Lesson, error) {
	convs := []struct {
		key     string
		convert func(map[string]any) (*Question, error)
	}{
		{"exercises", c.convertStageExercise},
		{"scenarios", c.convertStageScenario},
		{"activities", c.convertStageActivity},
	}
	out := make([]Lesson, 0, len(s.Lessons))
	for _, raw := range s.Lessons {
		var groups []Group
		for i, st := range sliceAny(raw["stages"]) {
			stage := mapFromAny(st)
			g := Group{
				Title:     orDefault(stringFromAny(stage["type"]), fmt.Sprintf("Part %d", i+1)),
				Questions: []Question{},
			}
			for _, conv := range convs {
				for _, item := range sliceAny(stage[conv.key]) {
					q, err := conv.convert(mapFromAny(item))
					if err != nil {
						return nil, err
					}
					if q != nil {
						g.Questions = append(g.Questions, *q)
					}
				}
			}
			groups = append(groups, g)
		}

		asm := Assemble(groups)
		l := Lesson{
			Number:   intFromAny(raw["lessonNumber"], 0),
			Title:    stringFromAny(raw["title"]),
			Section:  orDefault(firstString(raw["section"], raw["sectionId"]), "A"),
			Practice: asm.Practice,
		}
		if asm.TotalParts > 0 {
			l.Parts = asm.Parts
			l.TotalParts = asm.TotalParts
		}
		out = append(out, l)
	}
	return out, nil
}

func simple(s SimpleSubmission) ([]Lesson, error) {
	if err := validateAgainst(SimpleLessonSchema, s.Raw); err != nil {
		return nil, &InvalidFormatError{Reason: "simple lesson", Err: err}
	}
	var l Lesson
	if err := decodeInto(s.Raw, &l); err != nil {
		return nil, &InvalidFormatError{Reason: "simple lesson", Err: err}
	}
	if l.Practice == nil {
		l.Practice = []Question{}
	}
	return []Lesson{l}, nil
}
