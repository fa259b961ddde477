package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pair is a single name/value entry of a parameter mapping.
type Pair struct {
	Key   string
	Value string
}

// Params is an insertion-ordered parameter mapping.
// Keys are compared case-insensitively; the first spelling used is kept.
// The zero value is an empty mapping ready for use.
type Params struct {
	pairs []Pair
}

// NewParams builds a mapping from pairs, in order.
func NewParams(pairs ...Pair) *Params {
	p := &Params{pairs: make([]Pair, 0, len(pairs))}
	for _, pair := range pairs {
		p.Set(pair.Key, pair.Value)
	}
	return p
}

// Set stores value under key. Non-string values are rendered with fmt.Sprint.
// Setting an existing key replaces its value without moving it.
func (p *Params) Set(key string, value interface{}) {
	text := toText(value)
	if i := p.index(key); i >= 0 {
		p.pairs[i].Value = text
		return
	}
	p.pairs = append(p.pairs, Pair{Key: key, Value: text})
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p.pairs[i].Value, true
	}
	return "", false
}

// Len returns the number of entries.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Pairs returns a copy of the entries in insertion order.
func (p *Params) Pairs() []Pair {
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Map returns the entries as a plain map. Ordering is lost.
func (p *Params) Map() map[string]string {
	m := make(map[string]string, len(p.pairs))
	for _, pair := range p.pairs {
		m[pair.Key] = pair.Value
	}
	return m
}

// Redacted returns a copy in which the non-empty values of the given keys
// are replaced by mask.
func (p *Params) Redacted(mask string, keys ...string) *Params {
	out := NewParams(p.pairs...)
	for _, key := range keys {
		if v, ok := out.Get(key); ok && v != "" {
			out.Set(key, mask)
		}
	}
	return out
}

func (p *Params) index(key string) int {
	for i, pair := range p.pairs {
		if strings.EqualFold(pair.Key, key) {
			return i
		}
	}
	return -1
}

// MarshalJSON writes the mapping as a JSON object, keeping insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the mapping as a YAML mapping node, keeping insertion order.
func (p *Params) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, pair := range p.pairs {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Value},
		)
	}
	return node, nil
}

func toText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
