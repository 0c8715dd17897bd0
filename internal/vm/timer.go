package vm

// tickTimers decrements both timers once if they are running. While the
// sound timer is running the tone function is signalled.
func (m *Machine) tickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		if m.tone != nil {
			m.tone()
		}
		m.soundTimer--
	}
}
