// Package duration normalizes operator-entered durations such as "5m", "2h"
// or "3d" into a number of seconds.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// unitSeconds maps the accepted unit suffixes to their length in seconds.
// Suffixes are case-sensitive.
var unitSeconds = map[byte]int64{
	'm': 60,
	'h': 3600,
	'd': 86400,
}

// Kind tells which alternative a Value holds.
type Kind int

const (
	// KindPassthrough is input without a recognized unit, kept verbatim.
	KindPassthrough Kind = iota
	// KindSeconds is a parsed count of seconds.
	KindSeconds
)

// Value is the result of Normalize: either the untouched input or a number
// of seconds. The zero value is an empty passthrough.
type Value struct {
	kind    Kind
	raw     string
	seconds int64
}

// Passthrough returns a Value that carries raw unchanged.
func Passthrough(raw string) Value {
	return Value{kind: KindPassthrough, raw: raw}
}

// Seconds returns a Value holding n seconds.
func Seconds(n int64) Value {
	return Value{kind: KindSeconds, raw: strconv.FormatInt(n, 10), seconds: n}
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsSeconds reports whether v was parsed from a suffixed duration.
func (v Value) IsSeconds() bool { return v.kind == KindSeconds }

// Seconds returns the parsed count. ok is false for a passthrough value.
func (v Value) Seconds() (n int64, ok bool) {
	return v.seconds, v.kind == KindSeconds
}

// Raw returns the text v was built from.
func (v Value) Raw() string { return v.raw }

// String renders seconds in decimal, or the passthrough text verbatim.
func (v Value) String() string {
	if v.kind == KindSeconds {
		return strconv.FormatInt(v.seconds, 10)
	}
	return v.raw
}

// Duration converts a seconds value to a time.Duration.
// ok is false for passthrough values and for counts time.Duration cannot hold.
func (v Value) Duration() (d time.Duration, ok bool) {
	if v.kind != KindSeconds {
		return 0, false
	}
	limit := int64(math.MaxInt64 / int64(time.Second))
	if v.seconds > limit || v.seconds < -limit {
		return 0, false
	}
	return time.Duration(v.seconds) * time.Second, true
}

// Normalize converts a duration with a trailing m, h or d unit into seconds.
//
// Input without one of those suffixes, including plain numbers and other
// units such as "w", is returned as a passthrough value and is not
// interpreted. A recognized suffix after something that is not an integer
// is an error wrapping wklprep.ErrInvalidDuration.
func Normalize(s string) (Value, error) {
	if s == "" {
		return Passthrough(s), nil
	}

	factor, ok := unitSeconds[s[len(s)-1]]
	if !ok {
		return Passthrough(s), nil
	}

	prefix := strings.TrimSpace(s[:len(s)-1])
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w %q: %q is not an integer", wklprep.ErrInvalidDuration, s, prefix)
	}

	if n > math.MaxInt64/factor || n < math.MinInt64/factor {
		return Value{}, fmt.Errorf("%w %q: too large", wklprep.ErrInvalidDuration, s)
	}

	v := Seconds(n * factor)
	v.raw = s
	return v, nil
}
