package sink

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// ErrClosed is returned by Append once the file has been closed.
// Writing through a closed root logger is caller misuse and surfaces
// directly.
var ErrClosed = errors.New("sink: file already closed")

// File is an append-only log file. All writes are serialized and
// flushed to disk before Append returns.
type File struct {
	mu     sync.Mutex
	file   *os.File
	closed bool
}

// Open opens path for appending, creating the file when absent. The
// containing directory must already exist.
func Open(path string) (*File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	return &File{file: file}, nil
}

// Append writes p to the file and syncs it to disk. Each call appends
// exactly once, synchronously; calls are never reordered or coalesced.
func (f *File) Append(p []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if _, err := f.file.Write(p); err != nil {
		return errors.Wrap(err, "appending log line")
	}
	return errors.Wrap(f.file.Sync(), "syncing log file")
}

// Close syncs and closes the file. Further Append calls fail with
// ErrClosed. Closing twice is a no-op.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil // Already closed
	}
	f.closed = true

	if err := f.file.Sync(); err != nil {
		f.file.Close()
		return errors.Wrap(err, "syncing log file")
	}
	return errors.Wrap(f.file.Close(), "closing log file")
}
