package vm

import "errors"

// Errors reported by the machine. Fatal errors returned from Step wrap one of
// these and can be checked with errors.Is.
var (
	ErrProgramTooLarge  = errors.New("program exceeds available memory")
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrStackOverflow    = errors.New("stack overflow")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrMemoryOutOfRange = errors.New("memory access out of range")
	ErrKeyOutOfRange    = errors.New("key index out of range")
)
