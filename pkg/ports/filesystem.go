package ports

import (
	"io"
)

// FileSystem abstracts the file system operations the pipeline needs.
type FileSystem interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// ByteLength reports the total byte length of the file at path.
	// ok is false when the length cannot be determined, for example for
	// pipes and other non-regular files.
	ByteLength(path string) (length int64, ok bool)

	// WriteFile writes data to a file, creating parent directories and
	// the file itself if necessary.
	WriteFile(path string, data []byte) error
}
