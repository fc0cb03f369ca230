// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/memory"
)

// MaxSize is the largest ROM that fits into memory behind the program start.
const MaxSize = memory.Size - cpu.ProgramStart

var (
	// ErrEmpty is returned for ROM files without any content.
	ErrEmpty = errors.New("rom is empty")
	// ErrTooLarge is returned for ROM files that do not fit into memory.
	ErrTooLarge = errors.New("rom is too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw ROM image from the given file.
// CHIP-8 ROMs have no header, the file content is the program as loaded to memory.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// Read reads a raw ROM image from the reader and validates its size.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmpty
	case len(data) > MaxSize:
		return nil, fmt.Errorf("more than %d bytes: %w", MaxSize, ErrTooLarge)
	}
	return data, nil
}
