package terminal

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestHeadless(t *testing.T) {
	h := NewHeadless()
	assert.Equal(t, 0, h.Frames())

	var frame [vm.FramebufferSize]byte
	frame[1] = 1
	frame[vm.ScreenWidth] = 1
	assert.NoError(t, h.Draw(frame))
	assert.Equal(t, 1, h.Frames())
	assert.Equal(t, frame, h.Frame())

	lines := strings.Split(strings.TrimSuffix(h.String(), "\n"), "\n")
	assert.Len(t, lines, vm.ScreenHeight)
	assert.Equal(t, ".#"+strings.Repeat(".", vm.ScreenWidth-2), lines[0])
	assert.Equal(t, "#"+strings.Repeat(".", vm.ScreenWidth-1), lines[1])
	assert.Equal(t, strings.Repeat(".", vm.ScreenWidth), lines[2])
}
