package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DriverFile, cfg.StoreDriver)
	assert.Equal(t, DefaultBlock, cfg.Block)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.StrictAnswers)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Empty(t, cfg.LogLevel)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LESSONS_STORE_DRIVER", "SQLite")
	t.Setenv("LESSONS_STORE_DSN", "file:test.db")
	t.Setenv("LESSONS_BLOCK", "custom")
	t.Setenv("LESSONS_STRICT_ANSWERS", "yes")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := FromEnv()
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "file:test.db", cfg.StoreDSN)
	assert.Equal(t, "custom", cfg.Block)
	assert.True(t, cfg.StrictAnswers)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"false", true, false},
		{"", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("LESSONS_TEST_BOOL", tt.val)
		assert.Equal(t, tt.want, envBool("LESSONS_TEST_BOOL", tt.def), "value %q", tt.val)
	}
}
