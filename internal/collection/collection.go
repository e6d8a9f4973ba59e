package collection

import (
	"fmt"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

// Outcome is the merge engine's decision for one incoming lesson.
type Outcome string

const (
	// OutcomeMerge appended the lesson as a new part of a stored lesson
	// sharing its lessonId.
	OutcomeMerge Outcome = "MERGE"
	// OutcomeInsert appended the lesson as a new record.
	OutcomeInsert Outcome = "INSERT"
)

// Collection is the ordered lesson record set persisted as one block.
type Collection struct {
	Lessons []lessons.Lesson
}

// Upsert merges l into the lesson sharing its lessonId, or appends it.
//
// A merge appends one part built from l's practice and concatenates the
// practice lists; nothing is de-duplicated, so ingesting the same part twice
// stores its questions twice. An insert keeps l.Number as computed at
// normalization time.
func (c *Collection) Upsert(l lessons.Lesson) Outcome {
	if i := c.indexByID(l.LessonID); i >= 0 {
		c.merge(&c.Lessons[i], l)
		return OutcomeMerge
	}

	if l.LessonPart == 1 {
		l.Parts = []lessons.LessonPart{{
			PartNumber: 1,
			PartTitle:  partTitle(l.LessonPartTitle, 1),
			Questions:  clone(l.Practice),
		}}
		l.TotalParts = 1
	}
	if l.Practice == nil {
		l.Practice = []lessons.Question{}
	}
	c.Lessons = append(c.Lessons, l)
	return OutcomeInsert
}

func (c *Collection) merge(existing *lessons.Lesson, in lessons.Lesson) {
	if existing.Parts == nil {
		existing.Parts = []lessons.LessonPart{}
	}
	n := in.LessonPart
	if n == 0 {
		n = len(existing.Parts) + 1
	}
	existing.Parts = append(existing.Parts, lessons.LessonPart{
		PartNumber: n,
		PartTitle:  partTitle(in.LessonPartTitle, n),
		Questions:  clone(in.Practice),
	})
	existing.TotalParts = len(existing.Parts)
	existing.Practice = append(clone(existing.Practice), in.Practice...)
}

// Find returns the position of the lesson with lessonID, or when lessonID is
// empty the lesson with number. It returns -1 when there is none.
func (c *Collection) Find(lessonID string, number int) int {
	if lessonID != "" {
		return c.indexByID(lessonID)
	}
	for i := range c.Lessons {
		if c.Lessons[i].Number == number {
			return i
		}
	}
	return -1
}

// Replace swaps the lesson found by Find for l, appending l when none
// matches. It reports whether an existing record was replaced.
func (c *Collection) Replace(lessonID string, number int, l lessons.Lesson) bool {
	if l.Practice == nil {
		l.Practice = []lessons.Question{}
	}
	if i := c.Find(lessonID, number); i >= 0 {
		c.Lessons[i] = l
		return true
	}
	c.Lessons = append(c.Lessons, l)
	return false
}

// Remove deletes every lesson with lessonID, or with number when lessonID is
// empty, and returns how many were removed.
func (c *Collection) Remove(lessonID string, number int) int {
	kept := c.Lessons[:0]
	for _, l := range c.Lessons {
		match := l.Number == number
		if lessonID != "" {
			match = l.LessonID == lessonID
		}
		if !match {
			kept = append(kept, l)
		}
	}
	removed := len(c.Lessons) - len(kept)
	c.Lessons = kept
	return removed
}

// Titles lists the display titles of ls in order.
func Titles(ls []lessons.Lesson) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.DisplayTitle())
	}
	return out
}

func (c *Collection) indexByID(lessonID string) int {
	if lessonID == "" {
		return -1
	}
	for i := range c.Lessons {
		if c.Lessons[i].LessonID == lessonID {
			return i
		}
	}
	return -1
}

func partTitle(title string, n int) string {
	if title != "" {
		return title
	}
	return fmt.Sprintf("Part %d", n)
}

// clone copies qs so parts and practice never share a backing array.
func clone(qs []lessons.Question) []lessons.Question {
	return append([]lessons.Question{}, qs...)
}
