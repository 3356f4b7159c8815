// Package formatter defines how log entries are serialized into bytes.
//
// The only built-in implementation is LineFormatter, which produces the
// classic PSR-3 simple-logger line:
//
//	[2024-03-05 14:30:09] app.INFO: service started {"port":8080} []
//
// The channel is lowercased and the level tag uppercased at format
// time. The context payload is JSON-encoded; when absent it renders as
// the literal "[]" (a historical quirk of the format: the default is an
// empty list, not an empty object). The trailing extra segment uses the
// generic fmt representation rather than JSON, so its default is the
// empty-sequence literal "[]" as well.
//
// Formatting uses a pooled bytes.Buffer and time.AppendFormat to keep
// per-call allocations down. Buffers larger than 64 KiB are not
// returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
