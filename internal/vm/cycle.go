package vm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Step runs one instruction cycle: fetch the opcode at the program counter,
// advance the program counter, execute the instruction and tick the timers.
// A fatal condition raises the terminate flag and is returned as error.
func (m *Machine) Step() error {
	pc := m.pc
	opcode, err := m.fetch()
	if err != nil {
		return m.fail(pc, 0, err)
	}

	ins := Decode(opcode)
	if m.trace {
		m.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", disasm.Format(opcode)))
	}

	m.pc += opcodeSize
	err = m.execute(ins)
	m.tickTimers()

	if err != nil {
		return m.fail(pc, opcode, err)
	}
	return nil
}

// fetch reads the big-endian opcode at the program counter.
func (m *Machine) fetch() (uint16, error) {
	if int(m.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: fetching opcode at $%04X", ErrMemoryOutOfRange, m.pc)
	}
	return uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1]), nil
}

// fail raises the terminate flag, remembers the first fatal error and reports
// a diagnostic for the instruction at pc.
func (m *Machine) fail(pc, opcode uint16, err error) error {
	err = fmt.Errorf("opcode $%04X at $%03X: %w", opcode, pc, err)
	m.terminate = true
	if m.err == nil {
		m.err = err
	}

	m.logger.Error("Terminating program",
		log.Hex("pc", pc),
		log.Hex("opcode", opcode),
		log.String("instruction", disasm.Format(opcode)),
		log.Err(err))
	return err
}
