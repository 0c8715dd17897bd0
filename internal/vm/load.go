package vm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Load copies the program image into memory starting at ProgramStart.
// Images larger than MaxProgramSize are rejected without touching memory.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	copy(m.memory[ProgramStart:], program)

	m.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Hex("address", uint16(ProgramStart)))
	return nil
}

// LoadFrom reads the complete program image from the reader and loads it.
// Memory is only modified if the whole source could be read.
func (m *Machine) LoadFrom(reader io.Reader) error {
	program, err := io.ReadAll(io.LimitReader(reader, MaxProgramSize+1))
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}
	return m.Load(program)
}
