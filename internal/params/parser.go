package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// ParseKeyValuePairs converts a slice of "NAME=value" strings into ordered pairs.
// Only the first = separates name from value.
//
// Example:
//
//	pairs, err := ParseKeyValuePairs([]string{"HOST=h1", "DURTIME=2h"})
//	// Returns: []request.Pair{{"HOST", "h1"}, {"DURTIME", "2h"}}
func ParseKeyValuePairs(pairs []string) ([]request.Pair, error) {
	result := make([]request.Pair, 0, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: parameter %q is not in NAME=value format (example: --param HOST=h1)", wklprep.ErrInvalidConfig, pair)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("%w: parameter has empty name: %q", wklprep.ErrInvalidConfig, pair)
		}

		result = append(result, request.Pair{Key: key, Value: value})
	}

	return result, nil
}
