package mocks

import (
	"bytes"
	"fmt"
	"io"

	"github.com/user/y4mgif/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
type FileSystem struct {
	Files map[string][]byte

	// Written collects WriteFile calls.
	Written map[string][]byte
}

// NewFileSystem creates an empty in-memory file system.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		Files:   make(map[string][]byte),
		Written: make(map[string][]byte),
	}
}

func (m *FileSystem) Open(path string) (io.ReadCloser, error) {
	data, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *FileSystem) ByteLength(path string) (int64, bool) {
	data, ok := m.Files[path]
	if !ok {
		return 0, false
	}
	return int64(len(data)), true
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.Written[path] = data
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
