package params

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"

	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// ParseEnvFile parses params file content in .env format (comments, quoting
// and `export` prefixes as understood by godotenv).
func ParseEnvFile(content []byte) (map[string]string, error) {
	values, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wklprep.ErrInvalidConfig, err)
	}
	return values, nil
}

// LoadEnvFiles reads params files in order; later files override earlier ones.
// The merged values are returned sorted by name.
func LoadEnvFiles(paths []string, logger wklprep.Logger) ([]request.Pair, error) {
	merged := make(map[string]string)

	for _, path := range paths {
		logger.Verbose("Loading parameters from file: %s", path)

		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file '%s': %w\n\nTip: Verify the path and the file format (NAME=value)", path, err)
		}
		for k, v := range values {
			merged[k] = v
		}

		logger.Verbose("Loaded %d parameters from file (total: %d)", len(values), len(merged))
	}

	return sortedPairs(merged), nil
}

func sortedPairs(m map[string]string) []request.Pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]request.Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, request.Pair{Key: k, Value: m[k]})
	}
	return pairs
}
