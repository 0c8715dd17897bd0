package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDelayTimerStopsAtZero(t *testing.T) {
	m := newTestMachine(t)
	m.delayTimer = 5

	for range 5 {
		m.tickTimers()
	}
	assert.Equal(t, byte(0), m.DelayTimer())

	m.tickTimers()
	m.tickTimers()
	assert.Equal(t, byte(0), m.DelayTimer())
}

func TestSoundTimerSignalsTone(t *testing.T) {
	tones := 0
	m := New(WithLogger(log.NewTestLogger(t)), WithTone(func() { tones++ }))
	m.soundTimer = 3

	assert.True(t, m.SoundActive())
	for range 5 {
		m.tickTimers()
	}

	assert.Equal(t, 3, tones)
	assert.Equal(t, byte(0), m.SoundTimer())
	assert.False(t, m.SoundActive())
}

func TestStepTicksTimers(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	m.delayTimer = 2
	m.soundTimer = 1

	run(t, m, 1)
	assert.Equal(t, byte(1), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
}
