package formatter

import (
	"bytes"
	"sync"

	"github.com/psrlog/psrlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes, including the trailing
	// newline. It returns an error when the entry's context cannot be
	// serialized.
	Format(entry *core.Entry) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for the default
	// "2006-01-02 15:04:05")
	TimestampFormat string
}

// maxPooledBuffer caps the size of buffers returned to the pool; one
// oversized log line must not pin memory for the process lifetime.
const maxPooledBuffer = 64 * 1024

// bufPool recycles line buffers across Format calls. A typical line
// fits the 256-byte pre-grow.
var bufPool = sync.Pool{
	New: func() interface{} {
		buf := new(bytes.Buffer)
		buf.Grow(256)
		return buf
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledBuffer {
		bufPool.Put(buf)
	}
}
