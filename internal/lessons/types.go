package lessons

// QuestionType tags the canonical question variants.
type QuestionType string

const (
	TypeMultipleChoice   QuestionType = "multiple-choice"
	TypeMatching         QuestionType = "matching"
	TypeFillInBlank      QuestionType = "fill-in-blank"
	TypeSentenceBuilding QuestionType = "sentence-building"
)

// Option is one lettered choice of a multiple-choice question.
type Option struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Feedback is the structured correct/incorrect message pair shown after an answer.
// It serializes as a flat object; Extra holds every other key of a structured
// source object, and correct/incorrect too when they were not strings.
type Feedback struct {
	Correct   string
	Incorrect string
	Extra     map[string]any
}

// Question is the canonical question record every exercise kind converges to.
// Which fields are populated depends on Type:
//   - multiple-choice: Question, Options (ids "A", "B", ...), CorrectAnswer (an option id)
//   - matching: Question, Pairs
//   - fill-in-blank: Sentence, Answers, CorrectAnswer (== Answers[0]), WrongOptions, FillInOptions
//   - sentence-building: Question, Words, CorrectSentence
type Question struct {
	Type     QuestionType `json:"type,omitempty" yaml:"type,omitempty"`
	Question string       `json:"question,omitempty" yaml:"question,omitempty"`
	Scene    string       `json:"scene,omitempty" yaml:"scene,omitempty"`
	Image    string       `json:"image,omitempty" yaml:"image,omitempty"`

	Options       []Option `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" yaml:"correctAnswer,omitempty"`

	Pairs *Pairs `json:"pairs,omitempty" yaml:"pairs,omitempty"`

	Sentence      string   `json:"sentence,omitempty" yaml:"sentence,omitempty"`
	Answers       []string `json:"answers,omitempty" yaml:"answers,omitempty"`
	FillInOptions []string `json:"fillInOptions,omitempty" yaml:"fillInOptions,omitempty"`
	WrongOptions  []string `json:"wrongOptions,omitempty" yaml:"wrongOptions,omitempty"`

	Words           []string `json:"words,omitempty" yaml:"words,omitempty"`
	CorrectSentence string   `json:"correctSentence,omitempty" yaml:"correctSentence,omitempty"`

	Explanation string    `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Feedback    *Feedback `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// LessonPart is one ordered segment of a multi-part lesson.
type LessonPart struct {
	PartNumber int        `json:"partNumber" yaml:"partNumber"`
	PartTitle  string     `json:"partTitle" yaml:"partTitle"`
	Questions  []Question `json:"questions" yaml:"questions"`
}

// Lesson is the canonical persisted lesson record.
//
// When LessonID is set it is the durable merge key. Number is derived from it
// once, at normalization time, and is never recomputed afterwards.
type Lesson struct {
	Number     int          `json:"number" yaml:"number"`
	Title      string       `json:"title" yaml:"title"`
	Section    string       `json:"section" yaml:"section"`
	Practice   []Question   `json:"practice" yaml:"practice"`
	Parts      []LessonPart `json:"parts,omitempty" yaml:"parts,omitempty"`
	TotalParts int          `json:"totalParts,omitempty" yaml:"totalParts,omitempty"`

	SectionID       string         `json:"sectionId,omitempty" yaml:"sectionId,omitempty"`
	SectionTitle    string         `json:"sectionTitle,omitempty" yaml:"sectionTitle,omitempty"`
	UnitID          string         `json:"unitId,omitempty" yaml:"unitId,omitempty"`
	UnitTitle       string         `json:"unitTitle,omitempty" yaml:"unitTitle,omitempty"`
	LessonID        string         `json:"lessonId,omitempty" yaml:"lessonId,omitempty"`
	LessonTitle     string         `json:"lessonTitle,omitempty" yaml:"lessonTitle,omitempty"`
	LessonType      string         `json:"lessonType,omitempty" yaml:"lessonType,omitempty"`
	LessonPart      int            `json:"lessonPart,omitempty" yaml:"lessonPart,omitempty"`
	LessonPartTitle string         `json:"lessonPartTitle,omitempty" yaml:"lessonPartTitle,omitempty"`
	Objective       string         `json:"objective,omitempty" yaml:"objective,omitempty"`
	Gamification    map[string]any `json:"gamification,omitempty" yaml:"gamification,omitempty"`
	ContentScreens  []any          `json:"contentScreens,omitempty" yaml:"contentScreens,omitempty"`
}

// DisplayTitle returns Title, falling back to LessonTitle.
func (l Lesson) DisplayTitle() string {
	if l.Title != "" {
		return l.Title
	}
	return l.LessonTitle
}
