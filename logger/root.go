package logger

import (
	"sync"
	"time"

	"github.com/psrlog/psrlog/core"
	"github.com/psrlog/psrlog/formatter"
	"github.com/psrlog/psrlog/sink"
)

// DefaultChannel is the channel used by leveled calls made directly on
// the Root.
const DefaultChannel = "app"

// Config holds optional Root configuration
type Config struct {
	// Formatter to use (default: LineFormatter)
	Formatter formatter.Formatter
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter(formatter.Config{})
	}
}

// Root owns the open log file and the registry of channel proxies. It
// is safe for concurrent use: the registry and the file are each
// guarded independently.
type Root struct {
	file *sink.File
	fmtr formatter.Formatter

	mu       sync.Mutex
	registry map[string]*Proxy
}

// New opens (or creates) the log file at path and returns a Root with
// the default "app" channel already registered. It fails when the file
// cannot be opened, e.g. the containing directory does not exist or
// the path is unwritable.
func New(path string) (*Root, error) {
	return NewWithConfig(path, Config{})
}

// NewWithConfig is New with an explicit Config.
func NewWithConfig(path string, cfg Config) (*Root, error) {
	applyDefaults(&cfg)

	file, err := sink.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Root{
		file:     file,
		fmtr:     cfg.Formatter,
		registry: make(map[string]*Proxy),
	}
	r.Fork(DefaultChannel)
	return r, nil
}

// Fork returns the proxy registered for channel, creating and caching
// it on first use. Lookups are exact and case-sensitive; names are not
// validated. Calling Fork twice with the same name returns the
// identical proxy instance.
func (r *Root) Fork(channel string) Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.registry[channel]; ok {
		return p
	}

	p := &Proxy{root: r, channel: channel}
	r.registry[channel] = p
	return p
}

// Write formats one log line and appends it to the file. This is the
// only path that touches the file; every leveled call on the Root or
// on a proxy ends up here. The channel is lowercased at emission time
// only. A nil context serializes as "[]" and extra keeps its generic
// string representation, so both default segments render as "[]".
func (r *Root) Write(channel string, level core.Level, message string, context core.Context, extra []interface{}) error {
	data, err := r.fmtr.Format(&core.Entry{
		Time:    time.Now(),
		Channel: channel,
		Level:   level,
		Message: message,
		Context: context,
		Extra:   extra,
	})
	if err != nil {
		return err
	}
	return r.file.Append(data)
}

// Log writes message through the default "app" channel.
func (r *Root) Log(level core.Level, message string, context ...core.Context) error {
	return r.Fork(DefaultChannel).Log(level, message, context...)
}

// Emergency logs that the system is unusable.
func (r *Root) Emergency(message string, context ...core.Context) error {
	return r.Log(core.EmergencyLevel, message, context...)
}

// Alert logs that action must be taken immediately.
func (r *Root) Alert(message string, context ...core.Context) error {
	return r.Log(core.AlertLevel, message, context...)
}

// Critical logs critical conditions.
func (r *Root) Critical(message string, context ...core.Context) error {
	return r.Log(core.CriticalLevel, message, context...)
}

// Error logs runtime errors that do not require immediate action.
func (r *Root) Error(message string, context ...core.Context) error {
	return r.Log(core.ErrorLevel, message, context...)
}

// Warning logs exceptional occurrences that are not errors.
func (r *Root) Warning(message string, context ...core.Context) error {
	return r.Log(core.WarningLevel, message, context...)
}

// Notice logs normal but significant events. The emitted tag is
// "INFO".
func (r *Root) Notice(message string, context ...core.Context) error {
	return r.Log(core.NoticeLevel, message, context...)
}

// Info logs interesting events.
func (r *Root) Info(message string, context ...core.Context) error {
	return r.Log(core.InfoLevel, message, context...)
}

// Debug logs detailed debug information.
func (r *Root) Debug(message string, context ...core.Context) error {
	return r.Log(core.DebugLevel, message, context...)
}

// Close syncs and closes the underlying file. Proxies created by Fork
// hold no resource of their own; writes through them after Close fail
// with sink.ErrClosed. Closing twice is a no-op.
func (r *Root) Close() error {
	return r.file.Close()
}
