package request

import (
	"strings"

	"github.com/vvka-141/wklprep/pkg/wklprep"
)

const (
	flagTrue  = "true"
	flagFalse = "false"
)

// Flatten renders a parameter mapping as a request string for the workload service.
//
// Entries with an empty or "false" value are dropped, as are the MACHINE and
// START control keys. A "true" value is a flag: only the key is emitted.
// Every other entry is emitted as "KEY VALUE". Each emitted entry is preceded
// by one space, so a non-empty result starts with a space. Nothing emitted
// yields "".
func Flatten(p *Params) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	for _, pair := range p.pairs {
		if pair.Value == "" || pair.Value == flagFalse || IsControlKey(pair.Key) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(pair.Key)
		if pair.Value != flagTrue {
			b.WriteByte(' ')
			b.WriteString(pair.Value)
		}
	}
	return b.String()
}

// IsControlKey reports whether key steers the host and must not be forwarded.
func IsControlKey(key string) bool {
	for _, control := range wklprep.ControlKeys {
		if strings.EqualFold(key, control) {
			return true
		}
	}
	return false
}

// ParseRequest splits a flattened request string back into a mapping.
// Tokens named in flags are read as flags (value "true"); any other token is
// a key followed by one value token. A trailing key with no value is kept
// with an empty value.
//
// Values containing spaces do not survive Flatten, so they cannot be
// recovered here either.
func ParseRequest(s string, flags ...string) *Params {
	isFlag := make(map[string]bool, len(flags))
	for _, f := range flags {
		isFlag[strings.ToUpper(f)] = true
	}

	p := &Params{}
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		key := fields[i]
		if isFlag[strings.ToUpper(key)] {
			p.Set(key, flagTrue)
			continue
		}
		if i+1 < len(fields) {
			p.Set(key, fields[i+1])
			i++
			continue
		}
		p.Set(key, "")
	}
	return p
}
