package wklprep

import "fmt"

// Inputs holds the bindings the automation host substitutes into a job step
// before its parameters are prepared. Values are kept as the host delivers
// them: NOCLEAN and PARALLEL are the literal strings "true" or "false".
type Inputs struct {
	User     string
	Host     string
	SSIDs    string
	Threads  string
	DurTime  string
	Type     string
	Password string
	NoClean  string
	Parallel string

	// Machine and Start steer the host and are never forwarded.
	Machine string
	Start   string

	// ThreadID is the host's STAXThreadID for the launching thread.
	ThreadID int
}

// Validate checks the inputs that the preparation step cannot tolerate.
func (in Inputs) Validate() error {
	if in.ThreadID < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, KeyThreadID, in.ThreadID)
	}
	return nil
}

// PrivacyUnwrapper strips the markers an automation host wraps around
// sensitive values. Input without markers is returned unchanged.
//
// Inside STAX this is STAFUtil.removePrivacyDelimiters; the staf package
// provides a compatible implementation for running outside the host.
type PrivacyUnwrapper interface {
	RemovePrivacyDelimiters(s string) string
}

// Logger provides a pluggable logging interface.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs step-by-step diagnostics; shown only in verbose mode.
	Verbose(format string, args ...interface{})

	// Info logs messages the operator should always see.
	Info(format string, args ...interface{})

	// Error logs failures.
	Error(format string, args ...interface{})
}
