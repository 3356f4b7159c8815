package logger

import "github.com/psrlog/psrlog/core"

// Proxy is a lightweight handle bound to one channel of a Root. It
// holds no file resource of its own; every call delegates to the
// owning Root, tagged with the proxy's channel name.
type Proxy struct {
	root    *Root
	channel string
}

// Channel returns the name the proxy was forked with, in its original
// case. Lowercasing happens at write time only.
func (p *Proxy) Channel() string {
	return p.channel
}

// Fork forwards to the owning Root; there is exactly one registry and
// the Root owns it.
func (p *Proxy) Fork(channel string) Logger {
	return p.root.Fork(channel)
}

// Log writes message through the proxy's channel.
func (p *Proxy) Log(level core.Level, message string, context ...core.Context) error {
	var ctx core.Context
	if len(context) > 0 {
		ctx = context[0]
	}
	return p.root.Write(p.channel, level, message, ctx, nil)
}

// Emergency logs that the system is unusable.
func (p *Proxy) Emergency(message string, context ...core.Context) error {
	return p.Log(core.EmergencyLevel, message, context...)
}

// Alert logs that action must be taken immediately.
func (p *Proxy) Alert(message string, context ...core.Context) error {
	return p.Log(core.AlertLevel, message, context...)
}

// Critical logs critical conditions.
func (p *Proxy) Critical(message string, context ...core.Context) error {
	return p.Log(core.CriticalLevel, message, context...)
}

// Error logs runtime errors that do not require immediate action.
func (p *Proxy) Error(message string, context ...core.Context) error {
	return p.Log(core.ErrorLevel, message, context...)
}

// Warning logs exceptional occurrences that are not errors.
func (p *Proxy) Warning(message string, context ...core.Context) error {
	return p.Log(core.WarningLevel, message, context...)
}

// Notice logs normal but significant events. The emitted tag is
// "INFO".
func (p *Proxy) Notice(message string, context ...core.Context) error {
	return p.Log(core.NoticeLevel, message, context...)
}

// Info logs interesting events.
func (p *Proxy) Info(message string, context ...core.Context) error {
	return p.Log(core.InfoLevel, message, context...)
}

// Debug logs detailed debug information.
func (p *Proxy) Debug(message string, context ...core.Context) error {
	return p.Log(core.DebugLevel, message, context...)
}
