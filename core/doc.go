// Package core defines the shared types used across psrlog.
//
// It provides the Level type covering the eight PSR-3 severity levels,
// the Context type for arbitrary structured payloads attached to a log
// call, and the Entry type that represents a single log event on its
// way to the formatter.
//
// Levels carry a display tag via String() that matches the PSR-3
// simple-logger output convention: NOTICE and INFO both render as
// "INFO". The tag is what ends up in the log line, uppercased, after
// the channel name.
package core
