package vm

// CHIP-8 memory layout and hardware dimensions.
const (
	// MemorySize is the number of addressable memory cells.
	MemorySize = 0x1000

	// ProgramStart is the address programs are loaded to and executed from.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// StackDepth is the number of return addresses the stack can hold.
	StackDepth = 16

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// ScreenWidth is the horizontal resolution of the display in pixels.
	ScreenWidth = 64

	// ScreenHeight is the vertical resolution of the display in pixels.
	ScreenHeight = 32

	// FramebufferSize is the number of pixel cells in the framebuffer.
	FramebufferSize = ScreenWidth * ScreenHeight
)

const (
	opcodeSize    = 2
	flagRegister  = 0xF
	fontGlyphSize = 5
	fontSize      = 16 * fontGlyphSize
	spriteWidth   = 8
)

// fontset contains the 16 hexadecimal glyphs 0-F, 5 bytes each.
var fontset = [fontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Font returns a copy of the built-in glyph table stored at address 0.
func Font() [fontSize]byte {
	return fontset
}
