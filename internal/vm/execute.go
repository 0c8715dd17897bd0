package vm

import (
	"fmt"
)

// execute runs a decoded instruction. The program counter already points to
// the following instruction.
//
//nolint:funlen,cyclop // one case per operation
func (m *Machine) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSys:
		// machine code routine of the host computer, ignored

	case OpCls:
		m.framebuffer = [FramebufferSize]byte{}
		m.draw = true

	case OpRet:
		return m.ret()

	case OpJp:
		m.pc = ins.NNN

	case OpCall:
		return m.call(ins.NNN)

	case OpSeByte:
		m.skipIf(m.v[x] == ins.KK)

	case OpSneByte:
		m.skipIf(m.v[x] != ins.KK)

	case OpSeReg:
		m.skipIf(m.v[x] == m.v[y])

	case OpLdByte:
		m.v[x] = ins.KK

	case OpAddByte:
		m.v[x] += ins.KK

	case OpLdReg:
		m.v[x] = m.v[y]

	case OpOr:
		m.v[x] |= m.v[y]

	case OpAnd:
		m.v[x] &= m.v[y]

	case OpXor:
		m.v[x] ^= m.v[y]

	case OpAddReg:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.setWithFlag(x, byte(sum), sum > 0xFF)

	case OpSub:
		m.setWithFlag(x, m.v[x]-m.v[y], m.v[x] >= m.v[y])

	case OpShr:
		m.setWithFlag(x, m.v[x]>>1, m.v[x]&0x01 != 0)

	case OpSubn:
		m.setWithFlag(x, m.v[y]-m.v[x], m.v[y] >= m.v[x])

	case OpShl:
		m.setWithFlag(x, m.v[x]<<1, m.v[x]&0x80 != 0)

	case OpSneReg:
		m.skipIf(m.v[x] != m.v[y])

	case OpLdI:
		m.i = ins.NNN

	case OpJpV0:
		m.pc = ins.NNN + uint16(m.v[0])

	case OpRnd:
		m.v[x] = m.random() & ins.KK

	case OpDrw:
		return m.drawSprite(m.v[x], m.v[y], ins.N)

	case OpSkp, OpSknp:
		down, err := m.keyDown(m.v[x])
		if err != nil {
			return err
		}
		m.skipIf(down == (ins.Op == OpSkp))

	case OpLdVxDT:
		m.v[x] = m.delayTimer

	case OpLdVxK:
		m.waitForKey(x)

	case OpLdDTVx:
		m.delayTimer = m.v[x]

	case OpLdSTVx:
		m.soundTimer = m.v[x]

	case OpAddIVx:
		m.i += uint16(m.v[x])

	case OpLdFVx:
		m.i = uint16(m.v[x]) * fontGlyphSize

	case OpLdBVx:
		return m.storeBCD(m.v[x])

	case OpLdMemVx:
		return m.storeRegisters(x)

	case OpLdVxMem:
		return m.loadRegisters(x)

	default:
		return ErrUnknownOpcode
	}

	return nil
}

// setWithFlag writes the flag to VF first and the result to Vx afterwards,
// so the result wins when x is VF.
func (m *Machine) setWithFlag(x, result byte, flag bool) {
	if flag {
		m.v[flagRegister] = 1
	} else {
		m.v[flagRegister] = 0
	}
	m.v[x] = result
}

// skipIf skips the next instruction if the condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += opcodeSize
	}
}

func (m *Machine) call(address uint16) error {
	if int(m.sp) >= StackDepth {
		return fmt.Errorf("%w: %d nested calls", ErrStackOverflow, StackDepth)
	}
	m.stack[m.sp] = m.pc
	m.sp++
	m.pc = address
	return nil
}

func (m *Machine) ret() error {
	if m.sp == 0 {
		return fmt.Errorf("%w: return without call", ErrStackUnderflow)
	}
	m.sp--
	m.pc = m.stack[m.sp]
	return nil
}

// checkRange verifies that length memory cells starting at I are addressable.
func (m *Machine) checkRange(length int) error {
	if int(m.i)+length > MemorySize {
		return fmt.Errorf("%w: %d bytes at I=$%04X", ErrMemoryOutOfRange, length, m.i)
	}
	return nil
}

// storeBCD writes the hundreds, tens and units digits of value to I, I+1 and I+2.
func (m *Machine) storeBCD(value byte) error {
	if err := m.checkRange(3); err != nil {
		return err
	}
	m.memory[m.i] = value / 100
	m.memory[m.i+1] = value / 10 % 10
	m.memory[m.i+2] = value % 10
	return nil
}

// storeRegisters writes V0 to Vx inclusive to memory starting at I.
// I is not modified.
func (m *Machine) storeRegisters(x byte) error {
	count := int(x) + 1
	if err := m.checkRange(count); err != nil {
		return err
	}
	copy(m.memory[m.i:], m.v[:count])
	return nil
}

// loadRegisters fills V0 to Vx inclusive from memory starting at I.
// I is not modified.
func (m *Machine) loadRegisters(x byte) error {
	count := int(x) + 1
	if err := m.checkRange(count); err != nil {
		return err
	}
	copy(m.v[:count], m.memory[m.i:])
	return nil
}
