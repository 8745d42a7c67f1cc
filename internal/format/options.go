package format

import (
	"fmt"
	"strings"
)

// Kind selects an output format.
type Kind string

const (
	KindPretty Kind = "pretty"
	KindJSON   Kind = "json"
	KindJSONL  Kind = "jsonl"
)

// ParseKind accepts pretty, json or jsonl in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPretty, KindJSON, KindJSONL:
		return k, nil
	}
	return "", fmt.Errorf("unsupported format %q (must be pretty, json or jsonl)", s)
}

// Options configures rendering.
type Options struct {
	Color     bool
	ShowSpans bool // include unrecognized spans, not only tokens
	Values    bool // append the typed value of each token
	Width     int  // surface column width in cells, 0 = 24
}

func (o Options) surfaceWidth() int {
	if o.Width <= 0 {
		return 24
	}
	return o.Width
}
