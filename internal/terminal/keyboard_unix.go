//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Keyboard reads key presses from a terminal in raw, non-blocking mode.
type Keyboard struct {
	fd       int
	oldState *term.State
	buf      []byte
}

// NewKeyboard returns a keyboard reading from the given terminal input.
func NewKeyboard(in *os.File) *Keyboard {
	return &Keyboard{
		fd:  int(in.Fd()),
		buf: make([]byte, 64),
	}
}

// Start puts the terminal into raw mode to disable echo and line buffering
// and switches the input to non-blocking reads.
func (k *Keyboard) Start() error {
	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	k.oldState = oldState

	if err := unix.SetNonblock(k.fd, true); err != nil {
		_ = term.Restore(k.fd, k.oldState)
		k.oldState = nil
		return fmt.Errorf("setting non-blocking input: %w", err)
	}
	return nil
}

// Stop restores the previous terminal state.
func (k *Keyboard) Stop() error {
	if k.oldState == nil {
		return nil
	}

	_ = unix.SetNonblock(k.fd, false)
	err := term.Restore(k.fd, k.oldState)
	k.oldState = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Poll returns the keypad keys pressed since the last call and whether
// a quit key was pressed. It never blocks.
func (k *Keyboard) Poll() ([]byte, bool) {
	n, err := unix.Read(k.fd, k.buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
			return nil, false
		}
		return nil, true
	}
	if n <= 0 {
		return nil, false
	}
	return Translate(k.buf[:n])
}
