package vm

import "fmt"

// SetKey marks the key as the only key being held down. Only the low nibble
// of the key index is used.
func (m *Machine) SetKey(key byte) {
	m.keypad = [KeyCount]bool{}
	m.keypad[key&0x0F] = true
}

// ReleaseKeys marks all keys as released.
func (m *Machine) ReleaseKeys() {
	m.keypad = [KeyCount]bool{}
}

// keyDown returns the latch state of the key, the index comes from a register
// and is bounds checked.
func (m *Machine) keyDown(key byte) (bool, error) {
	if int(key) >= KeyCount {
		return false, fmt.Errorf("%w: key $%02X", ErrKeyOutOfRange, key)
	}
	return m.keypad[key], nil
}

// pressedKey returns the lowest key index that is down.
func (m *Machine) pressedKey() (byte, bool) {
	for key, down := range m.keypad {
		if down {
			return byte(key), true
		}
	}
	return 0, false
}

// waitForKey stores the pressed key in Vx. Without a pressed key the program
// counter is moved back so that the instruction runs again on the next cycle.
func (m *Machine) waitForKey(x byte) {
	key, ok := m.pressedKey()
	if !ok {
		m.pc -= opcodeSize
		return
	}
	m.v[x] = key
}
