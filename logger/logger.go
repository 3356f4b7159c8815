package logger

import "github.com/psrlog/psrlog/core"

// Context Re-export for convenience so call sites read
// logger.Context{...}
type Context = core.Context

// Logger is the leveled logging contract implemented by both Root and
// Proxy, so callers can treat them interchangeably. Each leveled
// method forwards to Log with its fixed level; context is optional and
// at most the first value is used.
type Logger interface {
	// Emergency logs that the system is unusable.
	Emergency(message string, context ...core.Context) error
	// Alert logs that action must be taken immediately.
	Alert(message string, context ...core.Context) error
	// Critical logs critical conditions.
	Critical(message string, context ...core.Context) error
	// Error logs runtime errors that do not require immediate action.
	Error(message string, context ...core.Context) error
	// Warning logs exceptional occurrences that are not errors.
	Warning(message string, context ...core.Context) error
	// Notice logs normal but significant events.
	Notice(message string, context ...core.Context) error
	// Info logs interesting events.
	Info(message string, context ...core.Context) error
	// Debug logs detailed debug information.
	Debug(message string, context ...core.Context) error

	// Log writes message at an arbitrary level.
	Log(level core.Level, message string, context ...core.Context) error

	// Fork returns the proxy bound to channel, creating and caching it
	// on first use. There is a single registry per Root; forking from a
	// proxy and forking from the Root are the same operation.
	Fork(channel string) Logger
}

var (
	_ Logger = (*Root)(nil)
	_ Logger = (*Proxy)(nil)
)
