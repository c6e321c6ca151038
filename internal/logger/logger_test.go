package logger

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New(true).GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	var buf strings.Builder
	log := NewWithWriter(&buf)

	log.Info().Str("source", "fetch").Msg("fetch finished")

	out := buf.String()
	assert.Contains(t, out, `"source":"fetch"`)
	assert.Contains(t, out, `"message":"fetch finished"`)
	assert.Contains(t, out, `"time"`)
}
