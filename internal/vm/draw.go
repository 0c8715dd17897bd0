package vm

// drawSprite XORs an n row sprite read from memory at I onto the framebuffer.
// Only the starting position wraps around the screen edges, rows and columns
// that extend past the right or bottom edge are clipped. VF is set to 1 if
// any set pixel was erased and to 0 otherwise.
func (m *Machine) drawSprite(vx, vy, n byte) error {
	startX := int(vx) % ScreenWidth
	startY := int(vy) % ScreenHeight

	rows := min(int(n), ScreenHeight-startY)
	if err := m.checkRange(rows); err != nil {
		return err
	}

	m.v[flagRegister] = 0
	for row := range rows {
		line := m.memory[int(m.i)+row]
		y := startY + row

		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}
			x := startX + col
			if x >= ScreenWidth {
				break
			}

			index := x + y*ScreenWidth
			if m.framebuffer[index] != 0 {
				m.v[flagRegister] = 1
			}
			m.framebuffer[index] ^= 1
		}
	}

	m.draw = true
	return nil
}
