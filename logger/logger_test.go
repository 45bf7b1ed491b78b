package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.DebugLevel,
		"":        zerolog.DebugLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "info", Format: logger.FormatJSON, Component: "enumerate", Writer: &buf})
	log.Debug().Msg("hidden")
	log.Info().Int("n", 3).Msg("shown")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one JSON record")
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "enumerate", rec["component"])
	assert.EqualValues(t, 3, rec["n"])
	assert.Contains(t, rec, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "debug", Format: logger.FormatConsole, Writer: &buf})
	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
