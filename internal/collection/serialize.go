package collection

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

// shapeDoc heads every rendered block so the file documents itself.
const shapeDoc = `Lesson collection. Written by lessonctl; every ingestion rewrites this
file in full.
lesson:
  number, title, section, practice: [question]
  parts: [{partNumber, partTitle, questions: [question]}], totalParts
  sectionId, sectionTitle, unitId, unitTitle, lessonId, lessonTitle,
  lessonType, lessonPart, lessonPartTitle, objective, gamification,
  contentScreens
question (by type):
  multiple-choice:   question, options: [{id, text}], correctAnswer
  matching:          question, pairs: {prompt: answer} | [{term, definition}]
  fill-in-blank:     sentence, answers, correctAnswer, wrongOptions, fillInOptions
  sentence-building: question, words, correctSentence
  all:               feedback: {correct, incorrect}`

// PersistenceReadError reports a stored block that cannot be parsed.
type PersistenceReadError struct {
	Block string
	Err   error
}

func (e *PersistenceReadError) Error() string {
	return fmt.Sprintf("read lesson block %q: %v", e.Block, e.Err)
}

func (e *PersistenceReadError) Unwrap() error { return e.Err }

type document struct {
	Lessons []lessons.Lesson `yaml:"lessons"`
}

// Render serializes c into a complete block. Each lesson is preceded by a
// "Lesson N: Title" comment. Nothing is written anywhere; a failure leaves
// no partial output behind.
func Render(c *Collection) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(c.Lessons) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, l := range c.Lessons {
		n := &yaml.Node{}
		if err := n.Encode(l); err != nil {
			return nil, fmt.Errorf("encode lesson %d: %w", l.Number, err)
		}
		n.HeadComment = fmt.Sprintf("Lesson %d: %s", l.Number, l.DisplayTitle())
		seq.Content = append(seq.Content, n)
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: shapeDoc,
		Content: []*yaml.Node{{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "lessons"},
				seq,
			},
		}},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("render collection: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render collection: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads a block produced by Render. An empty block is an empty
// collection.
func Parse(block string, data []byte) (*Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Collection{Lessons: []lessons.Lesson{}}, nil
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &PersistenceReadError{Block: block, Err: err}
	}
	if doc.Lessons == nil {
		doc.Lessons = []lessons.Lesson{}
	}
	for i := range doc.Lessons {
		if doc.Lessons[i].Practice == nil {
			doc.Lessons[i].Practice = []lessons.Question{}
		}
	}
	return &Collection{Lessons: doc.Lessons}, nil
}
