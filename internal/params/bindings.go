package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

type setter func(in *wklprep.Inputs, value string) error

func assign(field func(*wklprep.Inputs) *string) setter {
	return func(in *wklprep.Inputs, value string) error {
		*field(in) = value
		return nil
	}
}

// bindings is keyed by upper-cased binding name.
var bindings = map[string]setter{
	strings.ToUpper(wklprep.KeyUser):     assign(func(in *wklprep.Inputs) *string { return &in.User }),
	strings.ToUpper(wklprep.KeyHost):     assign(func(in *wklprep.Inputs) *string { return &in.Host }),
	strings.ToUpper(wklprep.KeySSIDs):    assign(func(in *wklprep.Inputs) *string { return &in.SSIDs }),
	strings.ToUpper(wklprep.KeyThreads):  assign(func(in *wklprep.Inputs) *string { return &in.Threads }),
	strings.ToUpper(wklprep.KeyDurTime):  assign(func(in *wklprep.Inputs) *string { return &in.DurTime }),
	strings.ToUpper(wklprep.KeyType):     assign(func(in *wklprep.Inputs) *string { return &in.Type }),
	strings.ToUpper(wklprep.KeyPassword): assign(func(in *wklprep.Inputs) *string { return &in.Password }),
	strings.ToUpper(wklprep.KeyNoClean):  assign(func(in *wklprep.Inputs) *string { return &in.NoClean }),
	strings.ToUpper(wklprep.KeyParallel): assign(func(in *wklprep.Inputs) *string { return &in.Parallel }),
	strings.ToUpper(wklprep.KeyMachine):  assign(func(in *wklprep.Inputs) *string { return &in.Machine }),
	strings.ToUpper(wklprep.KeyStart):    assign(func(in *wklprep.Inputs) *string { return &in.Start }),
	strings.ToUpper(wklprep.KeyThreadID): func(in *wklprep.Inputs, value string) error {
		id, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", wklprep.ErrInvalidConfig, wklprep.KeyThreadID, value)
		}
		in.ThreadID = id
		return nil
	},
}

// IsBinding reports whether name is one of the host bindings.
func IsBinding(name string) bool {
	_, ok := bindings[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

// Apply sets the binding called name on in.
func Apply(in *wklprep.Inputs, name, value string) error {
	set, ok := bindings[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w: %q", wklprep.ErrUnknownParameter, name)
	}
	return set(in, value)
}

// ApplyPairs applies pairs in order, stopping at the first error.
func ApplyPairs(in *wklprep.Inputs, pairs []request.Pair) error {
	for _, pair := range pairs {
		if err := Apply(in, pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMap applies m in name order so that spellings differing only in case
// resolve the same way on every run.
func ApplyMap(in *wklprep.Inputs, m map[string]string) error {
	return ApplyPairs(in, sortedPairs(m))
}

// FromEnviron extracts WKLPREP_<NAME> bindings from environ, which has the
// form returned by os.Environ. Variables with the prefix but an unknown name
// are ignored.
func FromEnviron(environ []string) []request.Pair {
	values := make(map[string]string)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || len(key) <= len(wklprep.EnvPrefix) {
			continue
		}
		if !strings.EqualFold(key[:len(wklprep.EnvPrefix)], wklprep.EnvPrefix) {
			continue
		}
		name := key[len(wklprep.EnvPrefix):]
		if IsBinding(name) {
			values[name] = value
		}
	}
	return sortedPairs(values)
}
