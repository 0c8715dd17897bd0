// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/terminal"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.Program{
		Emulation: options.NewEmulation(),
	}
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Trace {
		opts.Debug = true
	}

	if opts.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %d, must be positive", opts.FrameRate)
	}
	if opts.CyclesPerFrame <= 0 {
		return fmt.Errorf("invalid cycles per frame %d, must be positive", opts.CyclesPerFrame)
	}
	if opts.KeyHold <= 0 {
		return fmt.Errorf("invalid key hold %d, must be positive", opts.KeyHold)
	}
	if !terminal.ValidColor(opts.Color) {
		return fmt.Errorf("invalid color '%s'", opts.Color)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a listing of the ROM instead of running it")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal display and keyboard")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.StringVar(&opts.Color, "color", "", "pixel color of the terminal display, for example green or yellow+h")

	flags.IntVar(&opts.FrameRate, "fps", opts.FrameRate, "frames per second")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", opts.CyclesPerFrame, "instruction cycles per frame, each cycle ticks the timers once")
	flags.IntVar(&opts.KeyHold, "keyhold", opts.KeyHold, "frames a key stays down without a key repeat")
	flags.Uint64Var(&opts.MaxCycles, "max", 0, "stop after this many instruction cycles, 0 for no limit")
}
