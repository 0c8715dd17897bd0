package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/retroenv/retrochip8/internal/vm"
)

const (
	escClear      = "\x1b[2J"
	escHome       = "\x1b[H"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"

	bellInterval = 250 * time.Millisecond
)

// Screen renders framebuffers to a terminal using ANSI escape sequences.
type Screen struct {
	out      *bufio.Writer
	color    string // escape sequence of the pixel color, empty for the terminal default
	now      func() time.Time
	lastBell time.Time
}

// NewScreen returns a screen writing to the given terminal output. The
// pixel color is an ansi style like "green" or "yellow+h", an empty style
// uses the terminal colors.
func NewScreen(out io.Writer, style string) *Screen {
	return &Screen{
		out:   bufio.NewWriter(out),
		color: ansi.ColorCode(style),
		now:   time.Now,
	}
}

// ValidColor returns whether the foreground of the ansi style is a known
// color name or 256 color index. The empty style is valid.
func ValidColor(style string) bool {
	if style == "" {
		return true
	}
	foreground, _, _ := strings.Cut(style, ":")
	name, _, _ := strings.Cut(foreground, "+")
	_, ok := ansi.Colors[name]
	return ok
}

// Start clears the terminal and hides the cursor.
func (s *Screen) Start() error {
	if _, err := s.out.WriteString(escClear + escHome + escHideCursor); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	return s.out.Flush()
}

// Stop restores the cursor and moves it below the rendered frame.
func (s *Screen) Stop() error {
	if _, err := fmt.Fprintf(s.out, "\x1b[%d;1H%s", vm.ScreenHeight/2+1, escShowCursor); err != nil {
		return fmt.Errorf("restoring screen: %w", err)
	}
	return s.out.Flush()
}

// Draw renders the framebuffer, two pixel rows per terminal line.
// Lines end with CR LF as the terminal is in raw mode.
func (s *Screen) Draw(frame [vm.FramebufferSize]byte) error {
	if _, err := s.out.WriteString(escHome); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}

	for y := 0; y < vm.ScreenHeight; y += 2 {
		if _, err := s.out.WriteString(s.color); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}
		for x := range vm.ScreenWidth {
			top := frame[x+y*vm.ScreenWidth] != 0
			bottom := frame[x+(y+1)*vm.ScreenWidth] != 0
			if _, err := s.out.WriteString(halfBlock(top, bottom)); err != nil {
				return fmt.Errorf("drawing frame: %w", err)
			}
		}
		if s.color != "" {
			if _, err := s.out.WriteString(ansi.Reset); err != nil {
				return fmt.Errorf("drawing frame: %w", err)
			}
		}
		if _, err := s.out.WriteString("\r\n"); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}
	}

	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}

// Bell rings the terminal bell, at most once per bell interval so that a
// running sound timer does not flood the terminal.
func (s *Screen) Bell() error {
	now := s.now()
	if now.Sub(s.lastBell) < bellInterval {
		return nil
	}
	s.lastBell = now

	if err := s.out.WriteByte('\a'); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}
	return nil
}

func halfBlock(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}
