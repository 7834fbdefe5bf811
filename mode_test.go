package elloapi

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, LiveMode, m)
	m, err = ParseMode(" STUB ")
	assert.NoError(t, err)
	assert.Equal(t, StubMode, m)
	_, err = ParseMode("canned")
	assert.Error(t, err)
	assert.Equal(t, "stub", StubMode.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestSetMode(t *testing.T) {
	prior := CurrentMode()
	restore := SetMode(StubMode)
	assert.Equal(t, StubMode, CurrentMode())
	inner := SetMode(LiveMode)
	assert.Equal(t, LiveMode, CurrentMode())
	inner()
	assert.Equal(t, StubMode, CurrentMode())
	restore()
	assert.Equal(t, prior, CurrentMode())
}

func TestStubFor(t *testing.T) {
	prior := CurrentMode()
	t.Run("stubbed", func(t *testing.T) {
		StubFor(t)
		assert.Equal(t, StubMode, CurrentMode())
	})
	assert.Equal(t, prior, CurrentMode())
}
