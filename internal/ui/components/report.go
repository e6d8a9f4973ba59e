package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/MuhamadTAH/psychology-sub002/internal/ingest"
	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
	"github.com/MuhamadTAH/psychology-sub002/internal/ui/theme"
)

// BatchReport renders the success/failure summary of a batch run.
func BatchReport(res *ingest.BatchResult) string {
	lines := []string{
		theme.Title.Render("Batch upload"),
		fmt.Sprintf("%s  %s  %s",
			theme.Ok.Render(fmt.Sprintf("%d succeeded", res.Success)),
			theme.Fail.Render(fmt.Sprintf("%d failed", res.Failed)),
			theme.Hint.Render(fmt.Sprintf("%d total", res.Success+res.Failed)),
		),
	}
	if len(res.LessonTitles) > 0 {
		lines = append(lines, "", theme.Body.Render("Lessons:"))
		for _, t := range res.LessonTitles {
			lines = append(lines, "  "+theme.Ok.Render("✓")+" "+theme.Body.Render(t))
		}
	}
	if len(res.Errors) > 0 {
		lines = append(lines, "", theme.Body.Render("Errors:"))
		for _, e := range res.Errors {
			lines = append(lines, "  "+theme.Fail.Render("✗")+" "+theme.Warn.Render(e))
		}
	}
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LessonTable renders one row per stored lesson.
func LessonTable(ls []lessons.Lesson) string {
	if len(ls) == 0 {
		return theme.Hint.Render("No lessons stored.")
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%-4s  %-8s  %-10s  %-5s  %-8s  %s",
		"#", "Section", "Lesson ID", "Parts", "Practice", "Title")))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(strings.Repeat("─", 72)))
	for _, l := range ls {
		parts := "-"
		if l.TotalParts > 0 {
			parts = fmt.Sprint(l.TotalParts)
		}
		id := l.LessonID
		if id == "" {
			id = "-"
		}
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%-4d  %-8s  %-10s  %-5s  %-8d  %s",
			l.Number, l.Section, id, parts, len(l.Practice), l.DisplayTitle())))
	}
	return b.String()
}
