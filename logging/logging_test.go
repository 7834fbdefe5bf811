package logging

import (
	"bytes"
	"encoding/json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.DebugLevel, Output: &buf, Component: "provider"})
	log.Debug().Str("tag", "FriendStream").Msg("dispatch")

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "debug", m["level"])
	assert.Equal(t, "provider", m["component"])
	assert.Equal(t, "FriendStream", m["tag"])
	assert.Equal(t, "dispatch", m["message"])
	assert.Contains(t, m, "time")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.WarnLevel, Output: &buf})
	log.Info().Msg("ignored")
	assert.Equal(t, 0, buf.Len())
	log.Warn().Msg("written")
	assert.Contains(t, buf.String(), "written")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.InfoLevel, Output: &buf, Pretty: true})
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)
	l, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)
	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.NotNil(t, cfg.Output)
	assert.False(t, cfg.Pretty)

	var buf bytes.Buffer
	cfg.Output = &buf
	cfg.Component = "elloapi"
	New(cfg).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"elloapi"`)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	assert.NotPanics(t, func() {
		log.Error().Msg("discarded")
	})
}
