package collection

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
	"github.com/MuhamadTAH/psychology-sub002/internal/store"
)

func sampleCollection() *Collection {
	return &Collection{Lessons: []lessons.Lesson{
		{
			Number:  1,
			Title:   "Reading Intent",
			Section: "A",
			Practice: []lessons.Question{
				{
					Type:          lessons.TypeMultipleChoice,
					Question:      "[Scenario]\nA stranger smiles.\n\nWhat now?",
					Options:       []lessons.Option{{ID: "A", Text: "Smile"}, {ID: "B", Text: "Ignore"}},
					CorrectAnswer: "A",
					Feedback:      &lessons.Feedback{Correct: "Correct! Yes.", Incorrect: "Incorrect. Yes."},
				},
				{
					Type:     lessons.TypeMatching,
					Question: "Match",
					Pairs:    lessons.ParsePairs("No: denial; Yes: consent"),
				},
			},
		},
		{
			Number:      2,
			LessonTitle: "Only Lesson Title",
			Section:     "B",
			LessonID:    "B1-2",
			LessonPart:  1,
			Practice: []lessons.Question{{
				Type:          lessons.TypeFillInBlank,
				Sentence:      "The sky is ___.",
				Answers:       []string{"blue"},
				CorrectAnswer: "blue",
				WrongOptions:  []string{"red"},
				FillInOptions: []string{"blue", "red"},
			}},
			Parts: []lessons.LessonPart{{
				PartNumber: 1,
				PartTitle:  "Part 1",
				Questions: []lessons.Question{{
					Type:            lessons.TypeSentenceBuilding,
					Question:        "Arrange",
					Words:           []string{"b", "a"},
					CorrectSentence: "a b",
				}},
			}},
			TotalParts: 1,
		},
	}}
}

func TestRenderParse_RoundTrip(t *testing.T) {
	c := sampleCollection()
	data, err := Render(c)
	require.NoError(t, err)

	back, err := Parse("test", data)
	require.NoError(t, err)
	assert.Equal(t, c.Lessons, back.Lessons)
}

func TestRender_Banners(t *testing.T) {
	data, err := Render(sampleCollection())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "# Lesson collection."), out)
	assert.Contains(t, out, "# Lesson 1: Reading Intent\n")
	assert.Contains(t, out, "# Lesson 2: Only Lesson Title\n")
	assert.Less(t, strings.Index(out, "Lesson 1: Reading Intent"), strings.Index(out, "Lesson 2: Only Lesson Title"))
}

func TestRender_Empty(t *testing.T) {
	data, err := Render(&Collection{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "lessons: []")

	back, err := Parse("test", data)
	require.NoError(t, err)
	assert.Empty(t, back.Lessons)
}

func TestParse_Errors(t *testing.T) {
	c, err := Parse("blk", []byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, c.Lessons)

	_, err = Parse("blk", []byte("lessons: {not: [a list"))
	var readErr *PersistenceReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "blk", readErr.Block)
}

func TestRepo_FileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewRepo(store.NewFileStore(dir), "lessons")

	// A missing block is an empty collection.
	c, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, c.Lessons)

	c.Upsert(normalizeOne(t, part1))
	n, err := repo.Save(ctx, c)
	require.NoError(t, err)
	assert.Positive(t, n)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Lessons, 1)
	assert.Equal(t, "A1-3", loaded.Lessons[0].LessonID)
	assert.Equal(t, 1, loaded.Lessons[0].TotalParts)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lessons.yaml"), []byte("lessons: [unclosed"), 0o644))
	_, err = repo.Load(ctx)
	var readErr *PersistenceReadError
	assert.ErrorAs(t, err, &readErr)
}
