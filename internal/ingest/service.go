package ingest

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/MuhamadTAH/psychology-sub002/internal/collection"
	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
	"github.com/MuhamadTAH/psychology-sub002/internal/logger"
)

// Result is the success payload of a mutating request.
type Result struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	LessonTitles []string `json:"lessonTitles,omitempty"`
}

// EditRequest replaces a stored lesson. LessonID takes precedence over
// LessonNumber.
type EditRequest struct {
	LessonNumber  int             `json:"lessonNumber,omitempty"`
	LessonID      string          `json:"lessonId,omitempty"`
	UpdatedLesson *lessons.Lesson `json:"updatedLesson"`
}

// DeleteRequest removes stored lessons. LessonID takes precedence over
// LessonNumber.
type DeleteRequest struct {
	LessonNumber int    `json:"lessonNumber,omitempty"`
	LessonID     string `json:"lessonId,omitempty"`
}

// Service is the ingestion entrypoint. Every read-modify-write of the
// collection runs under one mutex, so concurrent requests against the same
// service never interleave.
type Service struct {
	mu   sync.Mutex
	repo *collection.Repo
	cfg  lessons.Config
	log  *logger.Logger
}

func NewService(repo *collection.Repo, cfg lessons.Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Ingest normalizes one raw submission and merges every resulting lesson
// into the collection. A submission is atomic: on any error nothing is
// written.
func (s *Service) Ingest(ctx context.Context, data []byte) (*Result, error) {
	log := s.log.With("request_id", uuid.NewString(), "block", s.repo.Block())

	raw, err := lessons.DecodeSubmission(data)
	if err != nil {
		log.Warn("decode submission failed", "error", err)
		return nil, err
	}
	res, err := lessons.Normalize(raw, s.cfg)
	if err != nil {
		log.Warn("normalize submission failed", "error", err)
		return nil, err
	}
	log.Info("submission normalized",
		"format", res.Format,
		"lessons", len(res.Lessons),
		"converted", res.Report.Converted,
		"dropped", res.Report.Dropped,
		"answer_fallbacks", res.Report.AnswerFallbacks,
	)
	if res.Report.AnswerFallbacks > 0 {
		log.Warn("unresolved answer references defaulted to option A", "count", res.Report.AnswerFallbacks)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	for _, l := range res.Lessons {
		outcome := coll.Upsert(l)
		log.Info("lesson upserted", "outcome", outcome, "number", l.Number, "lesson_id", l.LessonID)
	}
	n, err := s.repo.Save(ctx, coll)
	if err != nil {
		return nil, err
	}
	log.Info("collection persisted", "bytes", n, "total_lessons", len(coll.Lessons))

	return &Result{
		Success:      true,
		Message:      fmt.Sprintf("%d lesson(s) added successfully", len(res.Lessons)),
		LessonTitles: collection.Titles(res.Lessons),
	}, nil
}

// List returns every stored lesson in stored order.
func (s *Service) List(ctx context.Context) ([]lessons.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	return coll.Lessons, nil
}

// Edit replaces the identified lesson with req.UpdatedLesson, or appends it
// when no stored lesson matches. The identifier itself cannot change.
func (s *Service) Edit(ctx context.Context, req EditRequest) (*Result, error) {
	if (req.LessonID == "" && req.LessonNumber == 0) || req.UpdatedLesson == nil {
		return nil, &RequestError{Message: "Lesson number or ID and updated data required"}
	}
	updated := *req.UpdatedLesson
	if req.LessonID != "" {
		if updated.LessonID != req.LessonID {
			return nil, &RequestError{Message: "Cannot change lesson ID"}
		}
	} else if updated.Number != req.LessonNumber {
		return nil, &RequestError{Message: "Cannot change lesson number"}
	}

	id := identifier(req.LessonID, req.LessonNumber)
	log := s.log.With("request_id", uuid.NewString(), "block", s.repo.Block(), "lesson", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	replaced := coll.Replace(req.LessonID, req.LessonNumber, updated)
	n, err := s.repo.Save(ctx, coll)
	if err != nil {
		return nil, err
	}
	log.Info("lesson edited", "replaced", replaced, "bytes", n)

	return &Result{
		Success: true,
		Message: fmt.Sprintf("Lesson %s updated successfully", id),
	}, nil
}

// Delete removes every lesson matching the identifier.
func (s *Service) Delete(ctx context.Context, req DeleteRequest) (*Result, error) {
	if req.LessonID == "" && req.LessonNumber == 0 {
		return nil, &RequestError{Message: "Lesson number or ID is required"}
	}

	id := identifier(req.LessonID, req.LessonNumber)
	log := s.log.With("request_id", uuid.NewString(), "block", s.repo.Block(), "lesson", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	removed := coll.Remove(req.LessonID, req.LessonNumber)
	if removed == 0 {
		return nil, ErrLessonNotFound
	}
	n, err := s.repo.Save(ctx, coll)
	if err != nil {
		return nil, err
	}
	log.Info("lesson deleted", "removed", removed, "bytes", n)

	return &Result{
		Success: true,
		Message: fmt.Sprintf("Lesson %s deleted successfully", id),
	}, nil
}

func identifier(lessonID string, number int) string {
	if lessonID != "" {
		return lessonID
	}
	return strconv.Itoa(number)
}
