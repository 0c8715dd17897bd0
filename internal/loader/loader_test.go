package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x00}
		tmpFile := createTempFile(t, data)

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal(data, rom))
	})

	t.Run("load empty ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, 0)
	})

	t.Run("load ROM of maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, vm.MaxProgramSize))

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, vm.MaxProgramSize)
	})

	t.Run("error on ROM too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, vm.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, vm.ErrProgramTooLarge))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
