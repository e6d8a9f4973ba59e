package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadTAH/psychology-sub002/internal/config"
	"github.com/MuhamadTAH/psychology-sub002/internal/lessons"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsEndToEnd(t *testing.T) {
	t.Setenv("LOG_MODE", "prod")
	storeDir := t.TempDir()
	inputs := t.TempDir()

	part1 := `{"sectionId":"A","lessonId":"A1-2","lessonTitle":"Anchoring","lessonPart":1,
		"contentScreens":[{"exercises":[{"type":"true-false","statement":"S","correct":"false"}]}]}`
	part2 := `{"sectionId":"A","lessonId":"A1-2","lessonTitle":"Anchoring","lessonPart":2,
		"contentScreens":[{"exercises":[{"type":"build-sentence","words":["b","a"],"correct":"a b"}]}]}`
	p2 := filepath.Join(inputs, "part2.json")
	bad := filepath.Join(inputs, "bad.json")
	require.NoError(t, os.WriteFile(p2, []byte(part2), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o644))

	out, err := run(t, part1, "ingest", "--store", storeDir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 lesson(s) added successfully")

	out, err = run(t, "", "batch", "--store", storeDir, p2, bad)
	require.Error(t, err)
	assert.Contains(t, out, "1 succeeded")
	assert.Contains(t, out, "1 failed")

	out, err = run(t, "", "list", "--store", storeDir, "--json")
	require.NoError(t, err)
	var list struct {
		Lessons []lessons.Lesson `json:"lessons"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Lessons, 1)
	assert.Equal(t, 2, list.Lessons[0].TotalParts)
	assert.Len(t, list.Lessons[0].Practice, 2)

	out, err = run(t, `{"number": 2, "title": "Anchoring II", "lessonId": "A1-2", "section": "A", "practice": []}`,
		"edit", "--store", storeDir, "--id", "A1-2", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Lesson A1-2 updated successfully")

	out, err = run(t, "", "delete", "--store", storeDir, "--id", "A1-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Lesson A1-2 deleted successfully")

	_, err = run(t, "", "delete", "--store", storeDir, "--id", "A1-2")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	t.Setenv("LESSONS_STORE_DRIVER", "")
	t.Setenv("LESSONS_BLOCK", "")
	out, err := run(t, "", "version", "--block", "psych_lessons")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "lessonctl (devel)", lines[0])
	assert.Equal(t, "module: github.com/MuhamadTAH/psychology-sub002", lines[1])
	assert.Equal(t, "store:  file", lines[2])
	assert.Equal(t, "block:  psych_lessons", lines[3])
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "warn", logLevel(ingestCmd, config.Config{}))
	assert.Equal(t, "warn", logLevel(listCmd, config.Config{}))
	assert.Equal(t, "", logLevel(serveCmd, config.Config{}))
	assert.Equal(t, "debug", logLevel(ingestCmd, config.Config{LogLevel: "debug"}))
	assert.Equal(t, "error", logLevel(serveCmd, config.Config{LogLevel: "error"}))
}
