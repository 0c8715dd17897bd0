// Package pipeline orchestrates the emulator workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading, listing and running a ROM.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	writer   io.Writer
}

// New creates a new pipeline that writes listings, frames and headless
// output to the writer.
func New(logger *log.Logger, writer io.Writer) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		writer:   writer,
	}
}

// Execute loads the ROM and either prints its listing or runs it with the
// detected frontend.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		if err := disasm.Listing(p.writer, rom, vm.ProgramStart); err != nil {
			return fmt.Errorf("printing listing: %w", err)
		}
		return nil
	}

	frontend := p.detector.Detect(opts)
	return p.ExecuteWithROM(ctx, rom, opts, frontend)
}

// ExecuteWithROM runs an already loaded ROM with the given frontend.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program, frontend detector.Frontend) error {
	switch frontend {
	case detector.Terminal:
		return p.runTerminal(ctx, rom, opts)
	case detector.Headless:
		return p.runHeadless(ctx, rom, opts)
	default:
		return fmt.Errorf("unsupported frontend '%s'", frontend)
	}
}

// runTerminal runs the ROM with the terminal screen and keyboard. The
// terminal state is restored on every exit path.
func (p *Pipeline) runTerminal(ctx context.Context, rom []byte, opts options.Program) error {
	// log output would corrupt the rendered frames
	logger := p.logger
	if !opts.Debug {
		logger = config.CreateLogger(false, true)
	}

	screen := terminal.NewScreen(p.writer, opts.Color)
	machine, err := p.createMachine(logger, rom, opts, bell(logger, screen))
	if err != nil {
		return err
	}

	keyboard := terminal.NewKeyboard(os.Stdin)
	if err := keyboard.Start(); err != nil {
		return fmt.Errorf("starting keyboard: %w", err)
	}
	defer func() { _ = keyboard.Stop() }()

	if err := screen.Start(); err != nil {
		return fmt.Errorf("starting screen: %w", err)
	}
	defer func() { _ = screen.Stop() }()

	r := runner.New(logger, machine, screen, keyboard, opts.Emulation)
	return p.run(ctx, logger, r)
}

// bell returns the tone callback ringing the terminal bell. The machine
// has no error path for tones, so a failing bell is only logged.
func bell(logger *log.Logger, screen *terminal.Screen) func() {
	return func() {
		if err := screen.Bell(); err != nil {
			logger.Debug("Ringing terminal bell failed", log.Err(err))
		}
	}
}

// runHeadless runs the ROM without input and prints the final frame.
func (p *Pipeline) runHeadless(ctx context.Context, rom []byte, opts options.Program) error {
	machine, err := p.createMachine(p.logger, rom, opts, nil)
	if err != nil {
		return err
	}

	display := terminal.NewHeadless()
	r := runner.New(p.logger, machine, display, nil, opts.Emulation)
	runErr := p.run(ctx, p.logger, r)

	if !opts.Quiet {
		if _, err := io.WriteString(p.writer, display.String()); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
	return runErr
}

// createMachine creates a machine and loads the ROM into it.
func (p *Pipeline) createMachine(logger *log.Logger, rom []byte, opts options.Program, tone func()) (*vm.Machine, error) {
	machine := vm.New(config.MachineOptions(logger, opts, tone)...)

	p.logger.Info("Loading game",
		log.String("file", opts.Input),
		log.Int("size", len(rom)))

	if err := machine.Load(rom); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.logger.Info("Game loaded")
	return machine, nil
}

// run executes the runner and translates its stop reason.
func (p *Pipeline) run(ctx context.Context, logger *log.Logger, r *runner.Runner) error {
	stop, err := r.Run(ctx)
	switch stop {
	case runner.Terminated:
		if err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	case runner.CycleLimit:
		logger.Info("Cycle limit reached", log.Int("cycles", int(r.Cycles())))
	case runner.Quit:
		logger.Info("Emulation stopped by user")
	}
	return err
}
