package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/wklprep/internal/prepare"
)

var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorMuted   = lipgloss.Color("240") // Dark gray

	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	skippedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// emptyMarker stands in for an empty value so the column stays readable.
const emptyMarker = "(empty)"

// writeText writes one "KEY  value" line per binding followed by the request
// string and the delay. Keys Flatten drops are dimmed when styled.
func writeText(w io.Writer, res *prepare.Result, opts Options) error {
	pairs := res.Params.Pairs()

	width := 0
	for _, pair := range pairs {
		if len(pair.Key) > width {
			width = len(pair.Key)
		}
	}

	var b strings.Builder
	for _, pair := range pairs {
		value := pair.Value
		if value == "" {
			value = emptyMarker
		}
		key := fmt.Sprintf("%-*s", width, pair.Key)
		line := key + "  " + value
		if opts.Styled {
			if pair.Value == "" || pair.Value == "false" {
				line = skippedStyle.Render(line)
			} else {
				line = keyStyle.Render(key) + "  " + value
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(label("request", opts) + " " + strings.TrimPrefix(res.Request, " ") + "\n")
	b.WriteString(label("delay", opts) + "   " + fmt.Sprintf("%dms", res.Delay) + "\n")
	b.WriteString(label("id", opts) + "      " + res.RequestID + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func label(s string, opts Options) string {
	s += ":"
	if opts.Styled {
		return labelStyle.Render(s)
	}
	return s
}
