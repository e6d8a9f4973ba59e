package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source is one batch item. Open is called only when the item's turn comes,
// so at most one submission is held in memory at a time.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSources returns a Source per path.
func FileSources(paths []string) []Source {
	out := make([]Source, 0, len(paths))
	for _, p := range paths {
		p := p
		out = append(out, Source{
			Name: filepath.Base(p),
			Open: func() (io.ReadCloser, error) { return os.Open(p) },
		})
	}
	return out
}

// BatchResult tallies a batch run.
type BatchResult struct {
	Success      int      `json:"success"`
	Failed       int      `json:"failed"`
	Errors       []string `json:"errors"`
	LessonTitles []string `json:"lessonTitles"`
}

// Progress is called before each item is ingested; i is 1-based.
type Progress func(i, total int, name string)

// Batch ingests sources one at a time. A failing item is recorded and the
// batch moves on; once ctx is done the remaining items are counted as failed.
func (s *Service) Batch(ctx context.Context, sources []Source, progress Progress) *BatchResult {
	res := &BatchResult{Errors: []string{}, LessonTitles: []string{}}
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			res.Failed += len(sources) - i
			res.Errors = append(res.Errors, fmt.Sprintf("batch stopped before %s: %v", src.Name, err))
			break
		}
		if progress != nil {
			progress(i+1, len(sources), src.Name)
		}

		r, err := s.ingestSource(ctx, src)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Success++
		res.LessonTitles = append(res.LessonTitles, r.LessonTitles...)
	}
	s.log.Info("batch finished", "success", res.Success, "failed", res.Failed)
	return res
}

func (s *Service) ingestSource(ctx context.Context, src Source) (*Result, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name, err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name, err)
	}
	r, err := s.Ingest(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	return r, nil
}
