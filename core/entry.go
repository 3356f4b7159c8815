package core

import "time"

// Context carries arbitrary structured data attached to a log call.
// Values must be JSON-encodable; a value that is not (a channel, a
// function) makes the write fail with a serialization error.
type Context map[string]interface{}

// Entry represents a single log event handed to the formatter.
type Entry struct {
	Time    time.Time
	Channel string
	Level   Level
	Message string
	Context Context
	Extra   []interface{}
}
