// Package prepare builds the parameters a STAX job step hands to the
// workload service: the normalized duration, the obfuscated password, the
// ordered parameter mapping, its flattened request string and the launch
// delay of the calling thread.
package prepare

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/wklprep/internal/duration"
	"github.com/vvka-141/wklprep/internal/logging"
	"github.com/vvka-141/wklprep/internal/password"
	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/internal/staf"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// Result is everything a preparation produces.
type Result struct {
	// RequestID identifies this preparation in logs.
	RequestID string

	// Duration is DURTIME after normalization.
	Duration duration.Value

	// Params holds the output bindings in wklprep.OutputKeys order.
	Params *request.Params

	// Request is Params flattened into a request string.
	Request string

	// Delay is the thread's launch delay in milliseconds.
	Delay int64
}

// DelayDuration returns Delay as a time.Duration.
func (r *Result) DelayDuration() time.Duration {
	return time.Duration(r.Delay) * time.Millisecond
}

// Preparer runs preparations. It holds no per-call state and is safe for
// concurrent use when its logger is.
type Preparer struct {
	unwrapper wklprep.PrivacyUnwrapper
	logger    wklprep.Logger
	newID     func() string
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithUnwrapper sets the privacy-delimiter capability. Defaults to staf.Delimiters.
func WithUnwrapper(u wklprep.PrivacyUnwrapper) Option {
	return func(p *Preparer) {
		p.unwrapper = u
	}
}

// WithLogger sets the logger. Defaults to a NullLogger.
func WithLogger(l wklprep.Logger) Option {
	return func(p *Preparer) {
		p.logger = l
	}
}

// WithIDGenerator sets the request id source. Defaults to random UUIDs.
func WithIDGenerator(f func() string) Option {
	return func(p *Preparer) {
		p.newID = f
	}
}

// New creates a Preparer.
func New(opts ...Option) *Preparer {
	p := &Preparer{
		unwrapper: staf.Delimiters{},
		logger:    logging.NewNullLogger(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare runs the preparation steps in order: normalize DURTIME, obfuscate
// PASSWORD, build the mapping, flatten it and compute the delay.
func (p *Preparer) Prepare(in wklprep.Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	id := p.newID()
	p.logger.Verbose("Preparing request %s for thread %d", id, in.ThreadID)

	dur, err := duration.Normalize(in.DurTime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", wklprep.KeyDurTime, err)
	}
	if dur.IsSeconds() {
		p.logger.Verbose("%s %q normalized to %s seconds", wklprep.KeyDurTime, in.DurTime, dur)
	} else if in.DurTime != "" {
		p.logger.Verbose("%s %q has no m/h/d unit, passed through unchanged", wklprep.KeyDurTime, in.DurTime)
	}

	token := password.Obfuscate(in.Password, p.unwrapper)

	params := request.NewParams(
		request.Pair{Key: wklprep.KeyUser, Value: in.User},
		request.Pair{Key: wklprep.KeyHost, Value: in.Host},
		request.Pair{Key: wklprep.KeySSIDs, Value: in.SSIDs},
		request.Pair{Key: wklprep.KeyThreads, Value: in.Threads},
		request.Pair{Key: wklprep.KeyDurTime, Value: dur.String()},
		request.Pair{Key: wklprep.KeyType, Value: in.Type},
		request.Pair{Key: wklprep.KeyPasswordBase64, Value: token},
		request.Pair{Key: wklprep.KeyNoClean, Value: in.NoClean},
		request.Pair{Key: wklprep.KeyParallel, Value: in.Parallel},
	)

	res := &Result{
		RequestID: id,
		Duration:  dur,
		Params:    params,
		Request:   request.Flatten(params),
		Delay:     int64(in.ThreadID) * wklprep.DelayPerThreadMillis,
	}

	p.logger.Verbose("Request string:%s", request.Flatten(params.Redacted(wklprep.MaskedValue, wklprep.KeyPasswordBase64)))
	p.logger.Verbose("Launch delay: %s", res.DelayDuration())

	return res, nil
}
