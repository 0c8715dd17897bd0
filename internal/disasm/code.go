package disasm

import "fmt"

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// processJumpDestinations collects all jump and call destinations inside the
// program and generates their label names.
func processJumpDestinations(program []byte, base uint16) map[uint16]string {
	destinations := map[uint16]bool{} // address -> called
	end := int(base) + len(program)

	for offset := 0; offset+1 < len(program); offset += opcodeSize {
		opcode := uint16(program[offset])<<8 | uint16(program[offset+1])
		var call bool
		switch opcode & 0xF000 {
		case 0x1000:
		case 0x2000:
			call = true
		default:
			continue
		}

		target := opcode & 0x0FFF
		if target < base || int(target) >= end {
			continue
		}

		destinations[target] = destinations[target] || call
	}

	labels := make(map[uint16]string, len(destinations))
	for address, called := range destinations {
		if called {
			labels[address] = fmt.Sprintf(funcNaming, address)
		} else {
			labels[address] = fmt.Sprintf(labelNaming, address)
		}
	}
	return labels
}

// branchIntoInstruction returns the label of a branch destination that
// points to the second byte of the instruction at the address.
func branchIntoInstruction(labels map[uint16]string, address uint16) (string, bool) {
	name, ok := labels[address+1]
	return name, ok
}

// formatBranch returns the assembly text of a jump or call with the target
// replaced by its label.
func formatBranch(labels map[uint16]string, opcode uint16) (string, bool) {
	var name string
	switch opcode & 0xF000 {
	case 0x1000:
		name = "jp"
	case 0x2000:
		name = "call"
	default:
		return "", false
	}

	label, ok := labels[opcode&0x0FFF]
	if !ok {
		return "", false
	}
	return name + " " + label, true
}
