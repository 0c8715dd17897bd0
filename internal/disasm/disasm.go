// Package disasm formats CHIP-8 opcodes as assembly text.
// It is used for diagnostics of the virtual machine and for printing a
// listing of a program image.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

const opcodeSize = 2

// Lookup returns the instruction definition matching the opcode.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction, true
		}
	}
	return nil, false
}

// Format returns the assembly text of the opcode, for example "jp $234".
// Opcodes that are not part of the instruction set are formatted as data.
func Format(opcode uint16) string {
	ins, ok := Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	if params := formatParams(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// Listing writes a linear listing of the program, one instruction per line
// with its address and opcode bytes. Jump and call destinations inside the
// program get a label line. Data embedded in the program is decoded as
// instructions as well.
func Listing(w io.Writer, program []byte, base uint16) error {
	labels := processJumpDestinations(program, base)

	for offset := 0; offset < len(program); offset += opcodeSize {
		address := base + uint16(offset)

		if label, ok := labels[address]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
		}

		if offset+1 >= len(program) {
			b := program[offset]
			if _, err := fmt.Fprintf(w, "$%03X: %02X     .byte $%02X\n", address, b, b); err != nil {
				return fmt.Errorf("writing listing: %w", err)
			}
			break
		}

		opcode := uint16(program[offset])<<8 | uint16(program[offset+1])
		code, ok := formatBranch(labels, opcode)
		if !ok {
			code = Format(opcode)
		}
		if label, ok := branchIntoInstruction(labels, address); ok {
			code += " ; branch into instruction detected: " + label
		}

		if _, err := fmt.Fprintf(w, "$%03X: %02X %02X  %s\n", address,
			program[offset], program[offset+1], code); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
