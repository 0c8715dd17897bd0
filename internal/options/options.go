// Package options contains the program options.
package options

import "time"

// Defaults of the emulation loop.
const (
	DefaultFrameRate      = 60
	DefaultCyclesPerFrame = 1
	DefaultKeyHold        = 6
)

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"ROM file to run"`
}

// Flags contains behavior options.
type Flags struct {
	Disasm   bool `flag:"disasm" usage:"print a listing of the ROM instead of running it"`
	Headless bool `flag:"headless" usage:"run without terminal display and keyboard"`
	Trace    bool `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool `flag:"debug" usage:"enable debug logging"`
	Quiet    bool `flag:"q" usage:"quiet mode"`

	Color string `flag:"color" usage:"pixel color of the terminal display"`
}

// Emulation contains the pacing options of the emulation loop.
type Emulation struct {
	FrameRate      int    `flag:"fps" usage:"frames per second" default:"60"`
	CyclesPerFrame int    `flag:"cycles" usage:"instruction cycles per frame" default:"1"`
	KeyHold        int    `flag:"keyhold" usage:"frames a key stays down without a repeat" default:"6"`
	MaxCycles      uint64 `flag:"max" usage:"stop after this many instruction cycles, 0 for no limit"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// NewEmulation returns the default emulation options.
func NewEmulation() Emulation {
	return Emulation{
		FrameRate:      DefaultFrameRate,
		CyclesPerFrame: DefaultCyclesPerFrame,
		KeyHold:        DefaultKeyHold,
	}
}

// FrameDuration returns the time between two frames.
func (e Emulation) FrameDuration() time.Duration {
	if e.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(e.FrameRate)
}
