// Package logging provides the wklprep.Logger implementations used by the CLI.
//
// Available implementations:
//   - ConsoleLogger: writes to stderr (or any io.Writer), masking STAF-private data
//   - NullLogger: discards all messages
//
// Both are safe for concurrent use by multiple goroutines.
package logging
