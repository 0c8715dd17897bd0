package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestMachineOptions(t *testing.T) {
	logger := log.NewTestLogger(t)

	machineOpts := MachineOptions(logger, options.Program{}, nil)
	assert.Len(t, machineOpts, 2)

	tones := 0
	machineOpts = MachineOptions(logger, options.Program{}, func() { tones++ })
	assert.Len(t, machineOpts, 3)

	// 6005: ld V0, $05  F018: ld ST, V0
	m := vm.New(machineOpts...)
	assert.NoError(t, m.Load([]byte{0x60, 0x05, 0xF0, 0x18, 0x12, 0x04}))
	for range 4 {
		assert.NoError(t, m.Step())
	}
	assert.Equal(t, 3, tones)
}
