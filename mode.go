package elloapi

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Mode selects whether requests are served by the live transport or by sample data
type Mode int32

const (
	LiveMode Mode = iota
	StubMode
)

func (m Mode) String() string {
	switch m {
	case LiveMode:
		return "live"
	case StubMode:
		return "stub"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// ParseMode parses "live" or "stub" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "":
		return LiveMode, nil
	case "stub":
		return StubMode, nil
	}
	return LiveMode, fmt.Errorf("unknown mode %q", s)
}

var currentMode atomic.Int32

// CurrentMode is the process-wide mode - read once for each request a Provider builds
func CurrentMode() Mode {
	return Mode(currentMode.Load())
}

// SetMode sets the process-wide mode, returning a func that restores the prior mode
func SetMode(m Mode) (restore func()) {
	prior := Mode(currentMode.Swap(int32(m)))
	return func() {
		currentMode.Store(int32(prior))
	}
}

// Cleanuper is satisfied by *testing.T (and *testing.B)
type Cleanuper interface {
	Cleanup(func())
}

// StubFor switches to stub mode for the duration of a test - the prior mode is restored by the test's cleanup
func StubFor(t Cleanuper) {
	t.Cleanup(SetMode(StubMode))
}
