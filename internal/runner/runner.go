// Package runner drives a machine in real time: it feeds keyboard input into
// the keypad, executes a fixed number of instruction cycles per frame and
// presents the framebuffer whenever it changed.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Display presents framebuffers.
type Display interface {
	Draw(frame [vm.FramebufferSize]byte) error
}

// KeySource delivers the keys pressed by the user.
type KeySource interface {
	// Poll returns the keypad keys pressed since the last call and whether
	// the user requested to quit. It must not block.
	Poll() ([]byte, bool)
}

// Stop describes why the emulation ended.
type Stop int

// Reasons for the emulation to end.
const (
	Running Stop = iota
	Quit
	Terminated
	CycleLimit
	Cancelled
)

func (s Stop) String() string {
	switch s {
	case Running:
		return "running"
	case Quit:
		return "quit"
	case Terminated:
		return "terminated"
	case CycleLimit:
		return "cycle limit"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("stop(%d)", int(s))
	}
}

// Runner executes a machine frame by frame.
type Runner struct {
	logger  *log.Logger
	machine *vm.Machine
	display Display
	keys    KeySource
	opts    options.Emulation

	cycles    uint64
	frames    uint64
	keyDown   bool
	keyFrames int
}

// New returns a runner for the machine. keys may be nil for runs without input.
func New(logger *log.Logger, machine *vm.Machine, display Display, keys KeySource, opts options.Emulation) *Runner {
	if opts.CyclesPerFrame <= 0 {
		opts.CyclesPerFrame = options.DefaultCyclesPerFrame
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = options.DefaultKeyHold
	}

	return &Runner{
		logger:  logger,
		machine: machine,
		display: display,
		keys:    keys,
		opts:    opts,
	}
}

// Run executes frames paced by the frame rate until the machine terminates,
// the user quits, the cycle limit is reached or the context is cancelled.
// The returned error is the fatal machine error for terminated programs and
// the context error for cancelled runs.
func (r *Runner) Run(ctx context.Context) (Stop, error) {
	ticker := time.NewTicker(r.opts.FrameDuration())
	defer ticker.Stop()

	for {
		stop, err := r.Frame()
		if stop != Running {
			r.logger.Debug("Emulation stopped",
				log.Stringer("reason", stop),
				log.Int("cycles", int(r.cycles)),
				log.Int("frames", int(r.frames)))
			return stop, err
		}

		select {
		case <-ctx.Done():
			return Cancelled, fmt.Errorf("running program: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Frame runs a single frame without pacing: it applies pending key presses,
// executes the configured number of cycles and presents the framebuffer if
// it changed.
func (r *Runner) Frame() (Stop, error) {
	r.frames++

	if r.pollKeys() {
		return Quit, nil
	}

	for range r.opts.CyclesPerFrame {
		if r.opts.MaxCycles > 0 && r.cycles >= r.opts.MaxCycles {
			return CycleLimit, r.present()
		}

		r.cycles++
		if err := r.machine.Step(); err != nil {
			return Terminated, r.terminate(err)
		}
		if r.machine.ShouldTerminate() {
			return Terminated, r.terminate(r.machine.Err())
		}
	}

	return Running, r.present()
}

// Cycles returns the number of executed instruction cycles.
func (r *Runner) Cycles() uint64 {
	return r.cycles
}

// pollKeys latches the most recent key press. Terminals only report presses,
// so a key is released after it was not repeated for the key hold frames.
func (r *Runner) pollKeys() bool {
	if r.keys == nil {
		return false
	}

	keys, quit := r.keys.Poll()
	if quit {
		return true
	}

	if len(keys) > 0 {
		key := keys[len(keys)-1]
		r.machine.SetKey(key)
		r.keyDown = true
		r.keyFrames = 0
		return false
	}

	if r.keyDown {
		r.keyFrames++
		if r.keyFrames >= r.opts.KeyHold {
			r.machine.ReleaseKeys()
			r.keyDown = false
		}
	}
	return false
}

// terminate presents the last frame of a terminated program. A display
// failure is joined to the machine error.
func (r *Runner) terminate(err error) error {
	return errors.Join(err, r.present())
}

// present draws the framebuffer if the machine changed it.
func (r *Runner) present() error {
	if !r.machine.ShouldDraw() {
		return nil
	}
	if err := r.display.Draw(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}
