package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/psrlog/psrlog/core"
)

// DefaultTimestampFormat is the layout used when Config leaves
// TimestampFormat empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// LineFormatter formats log entries as single PSR-3 style text lines
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &LineFormatter{Config: cfg}
}

// Format formats an entry as one newline-terminated line
func (f *LineFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Timestamp - use AppendFormat to avoid string allocation
	buf.WriteByte('[')
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("] ")

	// Channel and level tag
	buf.WriteString(strings.ToLower(entry.Channel))
	buf.WriteByte('.')
	buf.WriteString(entry.Level.String())
	buf.WriteString(": ")

	// Message, inserted verbatim
	buf.WriteString(entry.Message)
	buf.WriteByte(' ')

	// Context - absent context renders as "[]", not "{}"
	if entry.Context == nil {
		buf.WriteString("[]")
	} else {
		data, err := json.Marshal(entry.Context)
		if err != nil {
			return nil, errors.Wrap(err, "encoding log context")
		}
		buf.Write(data)
	}
	buf.WriteByte(' ')

	// Extra keeps the generic fmt representation; a nil slice renders
	// as "[]"
	fmt.Fprintf(buf, "%v", entry.Extra)
	buf.WriteByte('\n')

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
