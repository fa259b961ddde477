package wklprep

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Preparation completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration or parameters
	ExitDurationError = 11 // DURTIME could not be normalized
	ExitPasswordError = 12 // Password token could not be decoded
)

// Names of the bindings the automation host supplies before a job is launched.
// Lookups are case-insensitive; these spellings are used on output.
const (
	KeyUser           = "USER"
	KeyHost           = "HOST"
	KeySSIDs          = "SSIDS"
	KeyThreads        = "THREADS"
	KeyDurTime        = "DURTIME"
	KeyType           = "TYPE"
	KeyPassword       = "PASSWORD"
	KeyPasswordBase64 = "PASSWORDBASE64"
	KeyNoClean        = "NOCLEAN"
	KeyParallel       = "PARALLEL"
	KeyMachine        = "MACHINE"
	KeyStart          = "START"
	KeyThreadID       = "STAXThreadID"
)

const (
	// DelayPerThreadMillis staggers job launches: a thread's delay is its id times this value.
	DelayPerThreadMillis = 1000

	// EnvPrefix is prepended to binding names when they are read from the process environment,
	// e.g. WKLPREP_HOST or WKLPREP_STAXTHREADID.
	EnvPrefix = "WKLPREP_"

	// MaskedValue replaces secrets in log output.
	MaskedValue = "********"
)

// OutputKeys lists the keys of the prepared parameter mapping in emission order.
var OutputKeys = []string{
	KeyUser,
	KeyHost,
	KeySSIDs,
	KeyThreads,
	KeyDurTime,
	KeyType,
	KeyPasswordBase64,
	KeyNoClean,
	KeyParallel,
}

// ControlKeys are accepted as input but never emitted in a request string.
var ControlKeys = []string{KeyMachine, KeyStart}
