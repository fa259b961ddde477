package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wklprep/internal/logging"
	"github.com/vvka-141/wklprep/internal/request"
)

func TestParseEnvFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name: "Simple bindings",
			content: `USER=bob
HOST=h1
THREADS=4`,
			expected: map[string]string{
				"USER":    "bob",
				"HOST":    "h1",
				"THREADS": "4",
			},
		},
		{
			name: "Quoted values",
			content: `PASSWORD="p w d"
TYPE='full'`,
			expected: map[string]string{
				"PASSWORD": "p w d",
				"TYPE":     "full",
			},
		},
		{
			name: "Comments and empty lines",
			content: `# job defaults
DURTIME=2h

# flags
PARALLEL=true
`,
			expected: map[string]string{
				"DURTIME":  "2h",
				"PARALLEL": "true",
			},
		},
		{
			name:     "Export prefix",
			content:  `export HOST=h2`,
			expected: map[string]string{"HOST": "h2"},
		},
		{
			name:     "Private password keeps its delimiters",
			content:  `PASSWORD='!!@secret@!!'`,
			expected: map[string]string{"PASSWORD": "!!@secret@!!"},
		},
		{
			name:     "Empty file",
			content:  "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseEnvFile([]byte(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadEnvFiles_LaterFilesOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	prod := filepath.Join(dir, "prod.env")
	require.NoError(t, os.WriteFile(base, []byte("HOST=h1\nTYPE=quick\n"), 0644))
	require.NoError(t, os.WriteFile(prod, []byte("TYPE=full\nTHREADS=8\n"), 0644))

	pairs, err := LoadEnvFiles([]string{base, prod}, logging.NewNullLogger())
	require.NoError(t, err)
	require.Equal(t, []request.Pair{
		{Key: "HOST", Value: "h1"},
		{Key: "THREADS", Value: "8"},
		{Key: "TYPE", Value: "full"},
	}, pairs)
}

func TestLoadEnvFiles_MissingFile(t *testing.T) {
	_, err := LoadEnvFiles([]string{filepath.Join(t.TempDir(), "missing.env")}, logging.NewNullLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read params file")
}

func TestLoadEnvFiles_None(t *testing.T) {
	pairs, err := LoadEnvFiles(nil, logging.NewNullLogger())
	require.NoError(t, err)
	require.Empty(t, pairs)
}
