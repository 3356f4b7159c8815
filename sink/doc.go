// Package sink owns the append-only log file resource.
//
// A File is opened once (created when absent, appended to when
// present) and serializes all access behind a mutex, so a single root
// logger shared across goroutines never interleaves partial lines.
// Every Append writes one complete line and syncs the file to disk
// before returning; there is no buffering across calls.
//
// The parent directory is never created: opening a path whose
// directory does not exist is an error, surfaced to the constructor.
package sink
