// Package render writes a preparation result in the formats the CLI offers.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/wklprep/internal/prepare"
	"github.com/vvka-141/wklprep/internal/request"
	"github.com/vvka-141/wklprep/pkg/wklprep"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatEnv  Format = "env"
)

// Names of the extra values written next to the parameter mapping in env output.
const (
	EnvRequest   = "REQUEST"
	EnvDelay     = "DELAY"
	EnvRequestID = "REQUEST_ID"
)

// Formats lists the accepted formats, for help text and completion.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatEnv}

// ParseFormat validates a user-supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q (valid: text, json, yaml, env)", wklprep.ErrInvalidConfig, s)
}

// document is the JSON and YAML shape of a result.
type document struct {
	RequestID string          `json:"request_id" yaml:"request_id"`
	Params    *request.Params `json:"params" yaml:"params"`
	Request   string          `json:"request" yaml:"request"`
	Delay     int64           `json:"delay" yaml:"delay"`
}

// Options tune text output.
type Options struct {
	// Styled enables terminal colors in text output.
	Styled bool
}

// Write renders res to w.
func Write(w io.Writer, res *prepare.Result, f Format, opts Options) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	case FormatEnv:
		return writeEnv(w, res)
	case FormatText, "":
		return writeText(w, res, opts)
	default:
		return fmt.Errorf("%w: unknown output format %q", wklprep.ErrInvalidConfig, f)
	}
}

func newDocument(res *prepare.Result) document {
	return document{
		RequestID: res.RequestID,
		Params:    res.Params,
		Request:   res.Request,
		Delay:     res.Delay,
	}
}

// writeEnv writes KEY="value" lines, sorted by key, that a shell or a
// godotenv loader can read back.
func writeEnv(w io.Writer, res *prepare.Result) error {
	values := res.Params.Map()
	values[EnvRequest] = res.Request
	values[EnvDelay] = strconv.FormatInt(res.Delay, 10)
	values[EnvRequestID] = res.RequestID

	out, err := godotenv.Marshal(values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
