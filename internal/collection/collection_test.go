package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

func normalizeOne(t *testing.T, body string) lessons.Lesson {
	t.Helper()
	raw, err := lessons.DecodeSubmission([]byte(body))
	require.NoError(t, err)
	res, err := lessons.Normalize(raw, lessons.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, res.Lessons, 1)
	return res.Lessons[0]
}

const part1 = `{
	"sectionId": "A", "unitId": "A1", "lessonId": "A1-3", "lessonTitle": "Mirroring",
	"lessonPart": 1, "lessonPartTitle": "Foundations",
	"contentScreens": [{"exercises": [
		{"type": "multiple-choice", "question": "Q1", "options": ["x", "y"], "correct": "x"},
		{"type": "true-false", "statement": "S1", "correct": "true"}
	]}]
}`

const part2 = `{
	"sectionId": "A", "unitId": "A1", "lessonId": "A1-3", "lessonTitle": "Mirroring",
	"lessonPart": 2,
	"contentScreens": [{"exercises": [
		{"type": "fill-in", "question": "___", "correct": "echo", "options": ["echo", "shout"]}
	]}]
}`

func TestUpsert_MergeInvariant(t *testing.T) {
	c := &Collection{}
	p1, p2 := normalizeOne(t, part1), normalizeOne(t, part2)

	assert.Equal(t, OutcomeInsert, c.Upsert(p1))
	assert.Equal(t, OutcomeMerge, c.Upsert(p2))

	require.Len(t, c.Lessons, 1)
	l := c.Lessons[0]
	assert.Equal(t, 3, l.Number)
	assert.Equal(t, 2, l.TotalParts)
	assert.Len(t, l.Practice, len(p1.Practice)+len(p2.Practice))
	require.Len(t, l.Parts, 2)
	assert.Equal(t, lessons.LessonPart{PartNumber: 1, PartTitle: "Foundations", Questions: p1.Practice}, l.Parts[0])
	assert.Equal(t, 2, l.Parts[1].PartNumber)
	assert.Equal(t, "Part 2", l.Parts[1].PartTitle)
	assert.Equal(t, p2.Practice, l.Parts[1].Questions)
}

func TestUpsert_DuplicatesOnReingest(t *testing.T) {
	c := &Collection{}
	p1 := normalizeOne(t, part1)

	c.Upsert(p1)
	assert.Equal(t, OutcomeMerge, c.Upsert(p1))

	require.Len(t, c.Lessons, 1)
	l := c.Lessons[0]
	require.Len(t, l.Practice, 4)
	assert.Equal(t, l.Practice[0], l.Practice[2])
	assert.Equal(t, l.Practice[1], l.Practice[3])
	assert.Equal(t, 2, l.TotalParts)
	assert.Equal(t, 1, l.Parts[1].PartNumber)
}

func TestUpsert_MergeIntoLessonWithoutParts(t *testing.T) {
	c := &Collection{Lessons: []lessons.Lesson{{
		Number:   5,
		Title:    "Stored",
		LessonID: "B1-5",
		Practice: []lessons.Question{{Type: lessons.TypeMultipleChoice, Question: "old"}},
	}}}
	in := lessons.Lesson{
		Number:   99,
		LessonID: "B1-5",
		Practice: []lessons.Question{{Type: lessons.TypeMultipleChoice, Question: "new"}},
	}

	assert.Equal(t, OutcomeMerge, c.Upsert(in))
	l := c.Lessons[0]
	assert.Equal(t, 5, l.Number, "number is never recomputed")
	require.Len(t, l.Parts, 1)
	assert.Equal(t, 1, l.Parts[0].PartNumber)
	assert.Equal(t, "Part 1", l.Parts[0].PartTitle)
	assert.Equal(t, 1, l.TotalParts)
	assert.Len(t, l.Practice, 2)
}

func TestUpsert_Insert(t *testing.T) {
	c := &Collection{Lessons: []lessons.Lesson{{Number: 1, Title: "One"}}}

	// Lessons without an identifier never merge.
	assert.Equal(t, OutcomeInsert, c.Upsert(lessons.Lesson{Number: 1, Title: "One again"}))
	assert.Equal(t, OutcomeInsert, c.Upsert(lessons.Lesson{Number: 7, LessonID: "C1-7", LessonPart: 2}))

	require.Len(t, c.Lessons, 3)
	assert.Equal(t, 7, c.Lessons[2].Number)
	assert.Nil(t, c.Lessons[2].Parts, "only part 1 seeds parts")
	assert.Equal(t, []lessons.Question{}, c.Lessons[2].Practice)
}

func TestUpsert_PartsDoNotAliasPractice(t *testing.T) {
	c := &Collection{}
	c.Upsert(normalizeOne(t, part1))
	c.Upsert(normalizeOne(t, part2))

	c.Lessons[0].Practice[0].Question = "changed"
	assert.Equal(t, "Q1", c.Lessons[0].Parts[0].Questions[0].Question)
}

func TestFindReplaceRemove(t *testing.T) {
	newColl := func() *Collection {
		return &Collection{Lessons: []lessons.Lesson{
			{Number: 1, Title: "a", LessonID: "A1-1"},
			{Number: 2, Title: "b"},
			{Number: 1, Title: "c", LessonID: "A2-1"},
		}}
	}

	c := newColl()
	assert.Equal(t, 2, c.Find("A2-1", 0))
	assert.Equal(t, 0, c.Find("", 1))
	assert.Equal(t, -1, c.Find("missing", 1), "an identifier never falls back to the number")
	assert.Equal(t, -1, c.Find("", 9))

	assert.True(t, c.Replace("", 2, lessons.Lesson{Number: 2, Title: "b2"}))
	assert.Equal(t, "b2", c.Lessons[1].Title)
	assert.False(t, c.Replace("Z9-9", 0, lessons.Lesson{LessonID: "Z9-9", Title: "z"}))
	assert.Len(t, c.Lessons, 4)

	c = newColl()
	assert.Equal(t, 2, c.Remove("", 1))
	assert.Equal(t, []string{"b"}, Titles(c.Lessons))

	c = newColl()
	assert.Equal(t, 1, c.Remove("A2-1", 0))
	assert.Equal(t, []string{"a", "b"}, Titles(c.Lessons))
	assert.Equal(t, 0, c.Remove("nope", 0))
}
