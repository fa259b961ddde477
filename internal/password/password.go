// Package password turns a host-supplied password into the single-line
// base64 token the workload service expects in PASSWORDBASE64.
//
// This is obfuscation, not encryption: anyone holding the token can decode it.
package password

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// Obfuscate strips privacy delimiters from raw with unwrapper, then encodes
// the result as standard padded base64 on a single line.
// A nil unwrapper leaves raw as given.
func Obfuscate(raw string, unwrapper wklprep.PrivacyUnwrapper) string {
	if unwrapper != nil {
		raw = unwrapper.RemovePrivacyDelimiters(raw)
	}
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Reveal decodes a token produced by Obfuscate. Line breaks and surrounding
// whitespace are ignored so tokens wrapped at 76 columns by other encoders
// decode too.
func Reveal(token string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', ' ', '\t':
			return -1
		}
		return r
	}, token)

	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("%w: %v", wklprep.ErrInvalidPassword, err)
	}
	return string(decoded), nil
}
