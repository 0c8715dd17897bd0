// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions returns the virtual machine options for the program options.
// The tone function may be nil if the frontend has no sound output.
func MachineOptions(logger *log.Logger, opts options.Program, tone func()) []vm.Option {
	machineOpts := []vm.Option{
		vm.WithLogger(logger),
		vm.WithTrace(opts.Trace),
	}
	if tone != nil {
		machineOpts = append(machineOpts, vm.WithTone(tone))
	}
	return machineOpts
}
