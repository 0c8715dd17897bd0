package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testDisplay struct {
	frames [][vm.FramebufferSize]byte
	err    error
}

func (d *testDisplay) Draw(frame [vm.FramebufferSize]byte) error {
	d.frames = append(d.frames, frame)
	return d.err
}

type testKeys struct {
	polls [][]byte
	quit  bool
}

func (k *testKeys) Poll() ([]byte, bool) {
	if k.quit {
		return nil, true
	}
	if len(k.polls) == 0 {
		return nil, false
	}
	keys := k.polls[0]
	k.polls = k.polls[1:]
	return keys, false
}

func newTestMachine(t *testing.T, opcodes ...uint16) *vm.Machine {
	t.Helper()

	program := make([]byte, 0, len(opcodes)*2)
	for _, opcode := range opcodes {
		program = append(program, byte(opcode>>8), byte(opcode))
	}

	return loadMachine(t, log.NewTestLogger(t), program)
}

// newFailingMachine returns a machine that logs into buf. Fatal conditions
// are logged at error level, which fails tests using the test logger.
func newFailingMachine(t *testing.T, buf *bytes.Buffer, opcodes ...uint16) *vm.Machine {
	t.Helper()

	program := make([]byte, 0, len(opcodes)*2)
	for _, opcode := range opcodes {
		program = append(program, byte(opcode>>8), byte(opcode))
	}

	logger := log.NewWithConfig(log.Config{
		Level:      log.DebugLevel,
		Output:     buf,
		TimeFormat: "-",
	})
	return loadMachine(t, logger, program)
}

func loadMachine(t *testing.T, logger *log.Logger, program []byte) *vm.Machine {
	t.Helper()

	m := vm.New(vm.WithLogger(logger))
	assert.NoError(t, m.Load(program))
	return m
}

func testEmulation() options.Emulation {
	opts := options.NewEmulation()
	opts.FrameRate = 1000
	return opts
}

func TestFrameCycleLimit(t *testing.T) {
	m := newTestMachine(t, 0x1200) // jp $200
	opts := testEmulation()
	opts.CyclesPerFrame = 3
	opts.MaxCycles = 10

	r := New(log.NewTestLogger(t), m, &testDisplay{}, nil, opts)

	stop := Running
	var err error
	frames := 0
	for stop == Running {
		stop, err = r.Frame()
		frames++
	}

	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, stop)
	assert.Equal(t, uint64(10), r.Cycles())
	assert.Equal(t, 4, frames)
}

func TestRunCycleLimit(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	opts := testEmulation()
	opts.MaxCycles = 5

	r := New(log.NewTestLogger(t), m, &testDisplay{}, nil, opts)
	stop, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, CycleLimit, stop)
	assert.Equal(t, uint64(5), r.Cycles())
}

func TestRunCancelled(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	opts := testEmulation()
	opts.FrameRate = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(log.NewTestLogger(t), m, &testDisplay{}, nil, opts)
	stop, err := r.Run(ctx)
	assert.Equal(t, Cancelled, stop)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(1), r.Cycles())
}

func TestFrameTerminated(t *testing.T) {
	var buf bytes.Buffer
	m := newFailingMachine(t, &buf, 0x00E0, 0xFFFF) // cls, invalid
	display := &testDisplay{}
	opts := testEmulation()
	opts.CyclesPerFrame = 4

	r := New(log.NewTestLogger(t), m, display, nil, opts)
	stop, err := r.Frame()
	assert.Equal(t, Terminated, stop)
	assert.True(t, errors.Is(err, vm.ErrUnknownOpcode))
	assert.ErrorContains(t, err, "opcode $FFFF at $202")
	assert.Equal(t, uint64(2), r.Cycles())
	assert.True(t, m.ShouldTerminate())
	assert.Len(t, display.frames, 1)

	assert.Contains(t, buf.String(), "Terminating program")
	assert.Contains(t, buf.String(), `"opcode":"0xFFFF"`)
}

func TestFrameTerminatedDisplayError(t *testing.T) {
	var buf bytes.Buffer
	m := newFailingMachine(t, &buf, 0x00E0, 0xFFFF) // cls, invalid
	display := &testDisplay{err: errors.New("broken pipe")}
	opts := testEmulation()
	opts.CyclesPerFrame = 4

	r := New(log.NewTestLogger(t), m, display, nil, opts)
	stop, err := r.Frame()
	assert.Equal(t, Terminated, stop)
	assert.True(t, errors.Is(err, vm.ErrUnknownOpcode))
	assert.ErrorContains(t, err, "drawing frame: broken pipe")
	assert.Len(t, display.frames, 1)
	assert.Contains(t, buf.String(), "Terminating program")
}

func TestFrameDrawsOnlyChanges(t *testing.T) {
	m := newTestMachine(t,
		0xA000, // ld I, $000 (glyph 0)
		0xD005, // drw V0, V0, 5
		0x1204, // jp $204
	)
	display := &testDisplay{}
	opts := testEmulation()
	opts.CyclesPerFrame = 2

	r := New(log.NewTestLogger(t), m, display, nil, opts)

	stop, err := r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, Running, stop)
	assert.Len(t, display.frames, 1)
	assert.Equal(t, byte(1), display.frames[0][0])

	_, err = r.Frame()
	assert.NoError(t, err)
	assert.Len(t, display.frames, 1)
}

func TestFrameDisplayError(t *testing.T) {
	m := newTestMachine(t, 0x00E0, 0x1202)
	display := &testDisplay{err: errors.New("broken pipe")}

	r := New(log.NewTestLogger(t), m, display, nil, testEmulation())
	_, err := r.Frame()
	assert.ErrorContains(t, err, "broken pipe")
}

func TestFrameQuit(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	keys := &testKeys{quit: true}

	r := New(log.NewTestLogger(t), m, &testDisplay{}, keys, testEmulation())
	stop, err := r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, Quit, stop)
	assert.Equal(t, uint64(0), r.Cycles())
}

func TestFrameKeyHold(t *testing.T) {
	tests := []struct {
		name       string
		keyHold    int
		expectedPC uint16
	}{
		{name: "released after hold", keyHold: 1, expectedPC: 0x204},
		{name: "still held", keyHold: 3, expectedPC: 0x206},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t,
				0xF00A, // ld V0, K
				0xE09E, // skp V0
				0x1204, // jp $204
				0x1206, // jp $206
			)
			keys := &testKeys{polls: [][]byte{{0x3, 0x5}}}
			opts := testEmulation()
			opts.KeyHold = tt.keyHold

			r := New(log.NewTestLogger(t), m, &testDisplay{}, keys, opts)

			_, err := r.Frame()
			assert.NoError(t, err)
			assert.Equal(t, byte(0x5), m.V(0))

			_, err = r.Frame()
			assert.NoError(t, err)
			_, err = r.Frame()
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPC, m.PC())
		})
	}
}

func TestFrameWaitsForKey(t *testing.T) {
	m := newTestMachine(t, 0xF30A) // ld V3, K
	keys := &testKeys{polls: [][]byte{nil, nil, {0xA}}}

	r := New(log.NewTestLogger(t), m, &testDisplay{}, keys, testEmulation())

	for range 2 {
		_, err := r.Frame()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200), m.PC())
	}

	_, err := r.Frame()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x202), m.PC())
	assert.Equal(t, byte(0xA), m.V(3))
}

func TestStopString(t *testing.T) {
	assert.Equal(t, "cycle limit", CycleLimit.String())
	assert.Equal(t, "stop(42)", Stop(42).String())
}
