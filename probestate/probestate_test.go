package probestate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestState_DefaultValues(t *testing.T) {
	// State starts as an empty struct; every field should have its zero value.
	assert.False(t, State.Debug)
	assert.False(t, State.ExtraDebugging)
	assert.False(t, State.CompactOutput)
	assert.Equal(t, time.Duration(0), State.ProbeTimeout)
}

func TestState_Modification(t *testing.T) {
	origDebug := State.Debug
	origTimeout := State.ProbeTimeout

	defer func() {
		State.Debug = origDebug
		State.ProbeTimeout = origTimeout
	}()

	State.Debug = true
	State.ProbeTimeout = 5 * time.Second

	assert.True(t, State.Debug)
	assert.Equal(t, 5*time.Second, State.ProbeTimeout)
}

func TestLogger_NotNil(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotNil(t, ErrorLogger)
}
