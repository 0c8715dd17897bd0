package terminal

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Headless is a display without output that remembers the last frame.
type Headless struct {
	frame  [vm.FramebufferSize]byte
	frames int
}

// NewHeadless returns a new headless display.
func NewHeadless() *Headless {
	return &Headless{}
}

// Draw stores the frame.
func (h *Headless) Draw(frame [vm.FramebufferSize]byte) error {
	h.frame = frame
	h.frames++
	return nil
}

// Frames returns the number of frames drawn.
func (h *Headless) Frames() int {
	return h.frames
}

// Frame returns the last drawn frame.
func (h *Headless) Frame() [vm.FramebufferSize]byte {
	return h.frame
}

// String renders the last frame as text, '#' for set and '.' for clear pixels.
func (h *Headless) String() string {
	var sb strings.Builder
	sb.Grow((vm.ScreenWidth + 1) * vm.ScreenHeight)

	for y := range vm.ScreenHeight {
		for x := range vm.ScreenWidth {
			if h.frame[x+y*vm.ScreenWidth] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
