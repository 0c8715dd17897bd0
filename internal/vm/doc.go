// Package vm implements the CHIP-8 virtual machine core.
//
// # Machine State
//
// A Machine owns the complete state of the target machine:
//   - 4096 bytes of memory, with the built-in font at 0x000-0x04F
//   - 16 general purpose registers V0-VF, VF doubling as the flags register
//   - the address register I, the program counter and a 16 level stack
//   - the delay and sound timers
//   - 16 keypad latches, of which at most one is down at any time
//   - a 64x32 monochrome framebuffer
//
// # Instruction Cycle
//
// Step executes exactly one instruction: the two bytes at the program counter
// are fetched big-endian, decoded into an Instruction, the program counter is
// advanced by 2 and the instruction is executed. Afterwards both timers are
// ticked once. The machine does not keep time itself, the caller decides how
// often Step is invoked.
//
// Fatal conditions (unknown opcodes, stack overflow or underflow, memory or
// keypad indices out of range) raise the sticky terminate flag and are
// returned from Step. The terminate flag is advisory, Step keeps executing if
// it is called again.
//
// # Usage Example
//
//	m := vm.New(vm.WithLogger(logger))
//	if err := m.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for !m.ShouldTerminate() {
//		if err := m.Step(); err != nil {
//			return err
//		}
//		if m.ShouldDraw() {
//			display.Draw(m.Framebuffer())
//		}
//	}
package vm
