package vm

// Op identifies the operation of a decoded instruction.
type Op uint8

// Operations of the CHIP-8 instruction set, named after their assembly
// mnemonic and operand form.
const (
	OpInvalid Op = iota
	OpSys        // 0nnn
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeByte     // 3xkk
	OpSneByte    // 4xkk
	OpSeReg      // 5xy0
	OpLdByte     // 6xkk
	OpAddByte    // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddIVx     // Fx1E
	OpLdFVx      // Fx29
	OpLdBVx      // Fx33
	OpLdMemVx    // Fx55
	OpLdVxMem    // Fx65
)

// Instruction is a decoded 16 bit opcode with all operand fields extracted.
// Fields that the operation does not use are still populated from the raw
// opcode bits.
type Instruction struct {
	Opcode uint16
	Op     Op

	X   byte   // bits 8-11, primary register
	Y   byte   // bits 4-7, secondary register
	N   byte   // bits 0-3, nibble literal
	KK  byte   // bits 0-7, immediate byte
	NNN uint16 // bits 0-11, address
}

// Decode splits the opcode into its operand fields and identifies the
// operation. Bit patterns outside the instruction set decode to OpInvalid.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Op:     decodeOp(opcode),
		X:      byte(opcode>>8) & 0x0F,
		Y:      byte(opcode>>4) & 0x0F,
		N:      byte(opcode) & 0x0F,
		KK:     byte(opcode),
		NNN:    opcode & 0x0FFF,
	}
}

// Valid returns whether the instruction is part of the instruction set.
func (i Instruction) Valid() bool {
	return i.Op != OpInvalid
}

func decodeOp(opcode uint16) Op {
	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		default:
			return OpSys
		}
	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeByte
	case 0x4000:
		return OpSneByte
	case 0x5000:
		if opcode&0x000F == 0 {
			return OpSeReg
		}
	case 0x6000:
		return OpLdByte
	case 0x7000:
		return OpAddByte
	case 0x8000:
		return decodeArithmetic(opcode)
	case 0x9000:
		if opcode&0x000F == 0 {
			return OpSneReg
		}
	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw
	case 0xE000:
		switch opcode & 0x00FF {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF000:
		return decodeMisc(opcode)
	}
	return OpInvalid
}

// decodeArithmetic handles the 8xyN group, selected by the low nibble.
func decodeArithmetic(opcode uint16) Op {
	switch opcode & 0x000F {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpInvalid
	}
}

// decodeMisc handles the FxKK group, selected by the low byte.
func decodeMisc(opcode uint16) Op {
	switch opcode & 0x00FF {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddIVx
	case 0x29:
		return OpLdFVx
	case 0x33:
		return OpLdBVx
	case 0x55:
		return OpLdMemVx
	case 0x65:
		return OpLdVxMem
	default:
		return OpInvalid
	}
}
