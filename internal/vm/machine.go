package vm

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// Machine is the complete state of a CHIP-8 machine. It has a single owner
// and is not safe for concurrent use.
type Machine struct {
	logger *log.Logger
	random func() byte
	tone   func()
	trace  bool

	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16
	sp     uint8
	stack  [StackDepth]uint16

	delayTimer byte
	soundTimer byte

	keypad      [KeyCount]bool
	framebuffer [FramebufferSize]byte

	draw      bool
	terminate bool
	err       error
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithRandom replaces the random byte source used by the RND instruction.
func WithRandom(random func() byte) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithTone sets the function that is signalled on every timer tick during
// which the sound timer is active.
func WithTone(tone func()) Option {
	return func(m *Machine) {
		m.tone = tone
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(m *Machine) {
		m.trace = trace
	}
}

// New returns an initialised machine with the font loaded and the program
// counter pointing to ProgramStart.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if m.random == nil {
		m.random = randomByte
	}

	m.Reset()
	return m
}

// Reset puts the machine back into its power-on state. Memory is cleared
// except for the font, so a program has to be loaded again.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[:], fontset[:])

	m.v = [RegisterCount]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.sp = 0
	m.stack = [StackDepth]uint16{}

	m.delayTimer = 0
	m.soundTimer = 0

	m.keypad = [KeyCount]bool{}
	m.framebuffer = [FramebufferSize]byte{}

	m.draw = false
	m.terminate = false
	m.err = nil
}

// ShouldDraw returns whether the framebuffer changed since the last call and
// lowers the draw flag.
func (m *Machine) ShouldDraw() bool {
	if !m.draw {
		return false
	}
	m.draw = false
	return true
}

// ShouldTerminate returns whether a fatal condition was hit. The flag stays
// raised until the machine is reset.
func (m *Machine) ShouldTerminate() bool {
	return m.terminate
}

// Err returns the first fatal error the machine encountered.
func (m *Machine) Err() error {
	return m.err
}

// Pixel returns the pixel at the given flat framebuffer index, which is
// x + y*ScreenWidth. The second return value is false for indices outside of
// the framebuffer.
func (m *Machine) Pixel(index int) (byte, bool) {
	if index < 0 || index >= FramebufferSize {
		return 0, false
	}
	return m.framebuffer[index], true
}

// Framebuffer returns a copy of the framebuffer.
func (m *Machine) Framebuffer() [FramebufferSize]byte {
	return m.framebuffer
}

// SoundActive returns whether the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the address register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of register Vx. Only the low nibble of x is used.
func (m *Machine) V(x byte) byte {
	return m.v[x&0x0F]
}

// SP returns the number of return addresses on the stack.
func (m *Machine) SP() uint8 {
	return m.sp
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// ReadMemory returns the memory cell at the given address.
func (m *Machine) ReadMemory(address uint16) (byte, bool) {
	if int(address) >= MemorySize {
		return 0, false
	}
	return m.memory[address], true
}

func randomByte() byte {
	return byte(rand.UintN(256))
}
