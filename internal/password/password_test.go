package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/wklprep/internal/staf"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

type upperUnwrapper struct{}

func (upperUnwrapper) RemovePrivacyDelimiters(s string) string {
	return strings.ToUpper(s)
}

func TestObfuscate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "secret", "c2VjcmV0"},
		{"delimited", "!!@secret@!!", "c2VjcmV0"},
		{"empty", "", ""},
		{"padding", "ab", "YWI="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Obfuscate(tt.input, staf.Delimiters{}))
		})
	}
}

func TestObfuscate_UsesUnwrapper(t *testing.T) {
	assert.Equal(t, Obfuscate("SECRET", nil), Obfuscate("secret", upperUnwrapper{}))
}

func TestObfuscate_NilUnwrapperKeepsMarkers(t *testing.T) {
	got, err := Reveal(Obfuscate("!!@x@!!", nil))
	require.NoError(t, err)
	assert.Equal(t, "!!@x@!!", got)
}

func TestObfuscate_LongPasswordIsSingleLine(t *testing.T) {
	long := strings.Repeat("p@ssw0rd-", 20)
	token := Obfuscate(long, staf.Delimiters{})

	assert.NotContains(t, token, "\n")
	assert.Equal(t, strings.TrimSpace(token), token)
}

func TestReveal_RoundTrip(t *testing.T) {
	unwrapper := staf.Delimiters{}
	for _, p := range []string{"secret", "!!@secret@!!", "abc@!!def", "with space", "ünïcödé", "", strings.Repeat("x", 200)} {
		t.Run(p, func(t *testing.T) {
			got, err := Reveal(Obfuscate(p, unwrapper))
			require.NoError(t, err)
			assert.Equal(t, unwrapper.RemovePrivacyDelimiters(p), got)
		})
	}
}

func TestObfuscate_LoneCloseMarkerIsKept(t *testing.T) {
	got, err := Reveal(Obfuscate("abc@!!def", staf.Delimiters{}))
	require.NoError(t, err)
	assert.Equal(t, "abc@!!def", got)
}

func TestReveal_WrappedToken(t *testing.T) {
	got, err := Reveal("c2Vj\ncmV0\n")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestReveal_Invalid(t *testing.T) {
	_, err := Reveal("not*base64")
	require.Error(t, err)
	assert.ErrorIs(t, err, wklprep.ErrInvalidPassword)
}
