package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf, true)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("path", "a.png").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "a.png")
}

func TestNew_EmptyLevelDefaultsToError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", &buf, true)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("chatty", nil, true)
	assert.Error(t, err)
}

func TestNew_NoColor(t *testing.T) {
	var plain, colored bytes.Buffer

	logger, err := New("debug", &plain, true)
	require.NoError(t, err)
	logger.Warn().Str("path", "a.png").Msg("plain")
	assert.NotContains(t, plain.String(), "\x1b[")

	logger, err = New("debug", &colored, false)
	require.NoError(t, err)
	logger.Warn().Str("path", "a.png").Msg("colored")
	assert.Contains(t, colored.String(), "\x1b[")
}
