package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("TERMPARAM_LOG_LEVEL", "error")
	t.Setenv("TERMPARAM_LOG_TIMESTAMP", "true")
	t.Setenv("TERMPARAM_LOG_NOCOLOR", "not-a-bool")

	cfg := DefaultConfig(ProfileTest)
	ApplyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.True(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor, "invalid bool keeps the profile default")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, NoColor: true, Out: &buf})

	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	logger.Warn().Str("bundle", "gnss_log").Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "gnss_log")
}
