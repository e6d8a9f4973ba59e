package lessons

import (
	"regexp"
	"strconv"
)

// Group is the converted questions of one stage or screen, in source order.
type Group struct {
	Title     string
	Questions []Question
}

// Assembly is the multi-part shape of a single lesson.
type Assembly struct {
	Parts      []LessonPart
	Practice   []Question
	TotalParts int
}

// Assemble turns ordered groups into numbered parts plus the flattened
// practice list. A single group still yields one part.
func Assemble(groups []Group) Assembly {
	out := Assembly{
		Parts:    make([]LessonPart, 0, len(groups)),
		Practice: []Question{},
	}
	for i, g := range groups {
		questions := g.Questions
		if questions == nil {
			questions = []Question{}
		}
		out.Parts = append(out.Parts, LessonPart{
			PartNumber: i + 1,
			PartTitle:  g.Title,
			Questions:  questions,
		})
		out.Practice = append(out.Practice, questions...)
	}
	out.TotalParts = len(out.Parts)
	return out
}

var lessonIDSuffix = regexp.MustCompile(`-(\d+)$`)

// LessonNumber derives a lesson's ordinal. A lesson identifier's trailing
// "-<digits>" wins ("A1-2" -> 2); an identifier without one yields 1. With
// no identifier the part number is used, then 1.
func LessonNumber(lessonID string, lessonPart int) int {
	if lessonID != "" {
		if m := lessonIDSuffix.FindStringSubmatch(lessonID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
		return 1
	}
	if lessonPart > 0 {
		return lessonPart
	}
	return 1
}
