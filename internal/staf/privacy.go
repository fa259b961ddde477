// Package staf implements the STAF privacy-delimiter convention for use
// outside a STAX job, where the host's own utility is not available.
//
// A private value is wrapped as "!!@secret@!!". A literal marker inside data
// is escaped with a caret: "^!!@" and "^@!!".
package staf

import "strings"

const (
	OpenMarker         = "!!@"
	CloseMarker        = "@!!"
	EscapedOpenMarker  = "^" + OpenMarker
	EscapedCloseMarker = "^" + CloseMarker
)

// Mask is written in place of each private section by MaskPrivateData.
const Mask = "************"

// Delimiters satisfies wklprep.PrivacyUnwrapper.
type Delimiters struct{}

// RemovePrivacyDelimiters drops the markers of every private section and
// turns escaped markers back into literal ones. A close marker that does not
// end an open section is plain text. Strings with no private section and no
// escaped marker are returned as is.
func (Delimiters) RemovePrivacyDelimiters(s string) string {
	if !IsPrivate(s) && !strings.Contains(s, EscapedOpenMarker) && !strings.Contains(s, EscapedCloseMarker) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, EscapedOpenMarker):
			b.WriteString(OpenMarker)
			i += len(EscapedOpenMarker)
		case strings.HasPrefix(rest, EscapedCloseMarker):
			b.WriteString(CloseMarker)
			i += len(EscapedCloseMarker)
		case strings.HasPrefix(rest, OpenMarker):
			depth++
			i += len(OpenMarker)
		case strings.HasPrefix(rest, CloseMarker) && depth > 0:
			depth--
			i += len(CloseMarker)
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// MaskPrivateData replaces each outermost private section, markers included,
// with Mask. An unterminated section is masked to the end of the string.
func MaskPrivateData(s string) string {
	if !IsPrivate(s) {
		return s
	}

	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, EscapedOpenMarker), strings.HasPrefix(rest, EscapedCloseMarker):
			if depth == 0 {
				b.WriteString(rest[:len(EscapedOpenMarker)])
			}
			i += len(EscapedOpenMarker)
		case strings.HasPrefix(rest, OpenMarker):
			if depth == 0 {
				b.WriteString(Mask)
			}
			depth++
			i += len(OpenMarker)
		case strings.HasPrefix(rest, CloseMarker) && depth > 0:
			depth--
			i += len(CloseMarker)
		default:
			if depth == 0 {
				b.WriteByte(s[i])
			}
			i++
		}
	}
	return b.String()
}

// IsPrivate reports whether s contains an unescaped open marker.
func IsPrivate(s string) bool {
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, EscapedOpenMarker):
			i += len(EscapedOpenMarker)
		case strings.HasPrefix(rest, OpenMarker):
			return true
		default:
			i++
		}
	}
	return false
}
