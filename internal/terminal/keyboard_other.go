//go:build !unix

package terminal

import (
	"errors"
	"os"
)

var errKeyboardUnsupported = errors.New("terminal keyboard is not supported on this platform, use -headless")

// Keyboard is not available on this platform.
type Keyboard struct{}

// NewKeyboard returns a keyboard that fails to start.
func NewKeyboard(_ *os.File) *Keyboard {
	return &Keyboard{}
}

// Start returns an error as raw terminal input is not supported.
func (k *Keyboard) Start() error {
	return errKeyboardUnsupported
}

// Stop does nothing.
func (k *Keyboard) Stop() error {
	return nil
}

// Poll never returns keys.
func (k *Keyboard) Poll() ([]byte, bool) {
	return nil, false
}
