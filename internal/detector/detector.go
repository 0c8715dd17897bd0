// Package detector handles frontend detection.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Frontend is the presentation and input layer the machine is run with.
type Frontend string

// Supported frontends.
const (
	Terminal Frontend = "terminal"
	Headless Frontend = "headless"
)

func (f Frontend) String() string {
	return string(f)
}

// Detector handles frontend detection from options and the environment.
type Detector struct {
	logger     *log.Logger
	isTerminal func() bool
}

// New creates a new frontend detector that inspects stdin.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Detect determines the frontend to use. The terminal frontend needs an
// interactive stdin for raw keyboard input, otherwise or if headless mode was
// requested the headless frontend is used.
func (d *Detector) Detect(opts options.Program) Frontend {
	if !d.hasKnownExtension(opts.Input) {
		d.logger.Warn("File extension is not a known CHIP-8 ROM extension",
			log.String("file", opts.Input))
	}

	if opts.Headless {
		return Headless
	}

	frontend := Terminal
	if !d.isTerminal() {
		frontend = Headless
	}
	d.logger.Debug("Auto-detected frontend",
		log.Stringer("frontend", frontend),
		log.String("file", opts.Input))
	return frontend
}

// hasKnownExtension returns whether the file name uses a ROM file extension.
func (d *Detector) hasKnownExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return true
	default:
		return false
	}
}
