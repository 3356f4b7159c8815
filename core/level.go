package core

import "strings"

// Level represents the severity of a log entry, following the PSR-3
// level set.
type Level int8

const (
	// EmergencyLevel means the system is unusable.
	EmergencyLevel Level = iota
	// AlertLevel means action must be taken immediately.
	AlertLevel
	// CriticalLevel for critical conditions, e.g. an application
	// component being unavailable.
	CriticalLevel
	// ErrorLevel for runtime errors that do not require immediate
	// action but should be logged and monitored.
	ErrorLevel
	// WarningLevel for exceptional occurrences that are not errors.
	WarningLevel
	// NoticeLevel for normal but significant events.
	NoticeLevel
	// InfoLevel for interesting events (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the display tag written into log lines. NoticeLevel
// and InfoLevel share the "INFO" tag; this mapping is part of the
// on-disk format and must not change.
func (l Level) String() string {
	switch l {
	case EmergencyLevel:
		return "EMERGENCY"
	case AlertLevel:
		return "ALERT"
	case CriticalLevel:
		return "CRITICAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case NoticeLevel, InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "EMERGENCY":
		return EmergencyLevel
	case "ALERT":
		return AlertLevel
	case "CRITICAL":
		return CriticalLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "NOTICE":
		return NoticeLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	default:
		return InfoLevel
	}
}
