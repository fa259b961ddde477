package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// resetCommandFlags restores the bound flag values and clears pflag's Changed
// marks so one execution cannot leak dedicated flags into the next.
func resetCommandFlags() {
	prepareFlags = prepareFlagValues{}
	flattenFlags = flattenFlagValues{flags: []string{wklprep.KeyNoClean, wklprep.KeyParallel}}
	obfuscateStdin = false

	clearChanged(rootCmd)
}

func clearChanged(cmd *cobra.Command) {
	unmark := func(f *pflag.Flag) { f.Changed = false }
	cmd.Flags().VisitAll(unmark)
	cmd.PersistentFlags().VisitAll(unmark)
	for _, sub := range cmd.Commands() {
		clearChanged(sub)
	}
}

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetCommandFlags()
	t.Cleanup(resetCommandFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestDurationCmd(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"5m", "300"},
		{"2h", "7200"},
		{"3d", "259200"},
		{"600", "600"},
		{"10s", "10s"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := executeCommand(t, "", "duration", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestDurationCmd_Invalid(t *testing.T) {
	_, err := executeCommand(t, "", "duration", "abch")
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitDurationError, wklprep.ExitCodeForError(err))
}

func TestDurationCmd_ArgsValidation(t *testing.T) {
	err := durationCmd.Args(durationCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitUsageError, wklprep.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "<value>")

	err = durationCmd.Args(durationCmd, []string{"1m", "2m"})
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitUsageError, wklprep.ExitCodeForError(err))
}

func TestFlattenCmd(t *testing.T) {
	out, err := executeCommand(t, "", "flatten", "HOST=h1", "THREADS=4", "MACHINE=m1", "PARALLEL=true", "NOCLEAN=false", "SSIDS=")
	require.NoError(t, err)
	assert.Equal(t, " HOST h1 THREADS 4 PARALLEL\n", out)
}

func TestFlattenCmd_NothingToEmit(t *testing.T) {
	out, err := executeCommand(t, "", "flatten", "NOCLEAN=false")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestFlattenCmd_Parse(t *testing.T) {
	out, err := executeCommand(t, "", "flatten", "--parse", " HOST h1 THREADS 4 PARALLEL")
	require.NoError(t, err)
	assert.Equal(t, "HOST=h1\nTHREADS=4\nPARALLEL=true\n", out)
}

func TestFlattenCmd_MalformedPair(t *testing.T) {
	_, err := executeCommand(t, "", "flatten", "HOST")
	require.Error(t, err)
	assert.ErrorIs(t, err, wklprep.ErrInvalidConfig)
}

func TestObfuscateCmd(t *testing.T) {
	out, err := executeCommand(t, "", "obfuscate", "!!@secret@!!")
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0\n", out)
}

func TestObfuscateCmd_Stdin(t *testing.T) {
	out, err := executeCommand(t, "secret\n", "obfuscate", "--stdin")
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0\n", out)

	out, err = executeCommand(t, "secret", "obfuscate")
	require.NoError(t, err)
	assert.Equal(t, "c2VjcmV0\n", out)
}

func TestObfuscateCmd_ArgumentWithStdin(t *testing.T) {
	out, err := executeCommand(t, "other\n", "obfuscate", "secret", "--stdin")
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitUsageError, wklprep.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "--stdin")
	assert.Empty(t, out)
}

func TestRevealCmd(t *testing.T) {
	out, err := executeCommand(t, "", "reveal", "c2VjcmV0")
	require.NoError(t, err)
	assert.Equal(t, "secret\n", out)
}

func TestRevealCmd_Invalid(t *testing.T) {
	_, err := executeCommand(t, "", "reveal", "not*base64")
	require.Error(t, err)
	assert.ErrorIs(t, err, wklprep.ErrInvalidPassword)
	assert.Equal(t, wklprep.ExitPasswordError, wklprep.ExitCodeForError(err))
}

func TestUnknownCommand_IsUsageError(t *testing.T) {
	_, err := executeCommand(t, "", "bogus")
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitUsageError, wklprep.ExitCodeForError(err))
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wklprep "), out)
}

func TestPrepareCmd_JSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeCommand(t, "!!@secret@!!\n",
		"prepare",
		"--user", "bob", "--host", "h1", "--threads", "4", "--durtime", "2h",
		"--type", "full", "--parallel", "--thread-id", "3",
		"--password-stdin", "-o", "json",
	)
	require.NoError(t, err)

	var doc struct {
		RequestID string            `json:"request_id"`
		Params    map[string]string `json:"params"`
		Request   string            `json:"request"`
		Delay     int64             `json:"delay"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	_, err = uuid.Parse(doc.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, " USER bob HOST h1 THREADS 4 DURTIME 7200 TYPE full PASSWORDBASE64 c2VjcmV0 PARALLEL", doc.Request)
	assert.Equal(t, int64(3000), doc.Delay)
	assert.Equal(t, "7200", doc.Params[wklprep.KeyDurTime])
	assert.Equal(t, "c2VjcmV0", doc.Params[wklprep.KeyPasswordBase64])
	assert.NotContains(t, out, "secret")
}

func TestPrepareCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeCommand(t, "", "prepare", "--host", "h1", "--parallel", "-o", "json")
	require.NoError(t, err)

	out, err := executeCommand(t, "", "prepare", "--param", "HOST=h2", "--param", "PARALLEL=true", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Request string `json:"request"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, " HOST h2 PARALLEL", doc.Request)
	assert.False(t, prepareCmd.Flags().Changed("host"))
}

func TestPrepareCmd_UnknownOutputFormat(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeCommand(t, "", "prepare", "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, wklprep.ExitConfigError, wklprep.ExitCodeForError(err))
}

func TestCompleteOutputFormats(t *testing.T) {
	cmd := &cobra.Command{}

	completions, directive := completeOutputFormats(cmd, nil, "")
	assert.Len(t, completions, 4)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	completions, _ = completeOutputFormats(cmd, nil, "y")
	assert.Equal(t, []string{"yaml"}, completions)
}

func TestCompleteBindingNames(t *testing.T) {
	cmd := &cobra.Command{}

	completions, _ := completeBindingNames(cmd, nil, "pa")
	assert.ElementsMatch(t, []string{"PARALLEL=", "PASSWORD="}, completions)

	completions, _ = completeBindingNames(cmd, nil, "")
	assert.NotContains(t, completions, "PASSWORDBASE64=")
	assert.Contains(t, completions, "STAXThreadID=")
	assert.Contains(t, completions, "MACHINE=")
}
