package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"prelex/internal/morph"
)

// ElementOutput is the JSON form of one analyzed element.
type ElementOutput struct {
	Text     string   `json:"text"`
	Start    uint32   `json:"start"`
	End      uint32   `json:"end"`
	Kind     string   `json:"kind,omitempty"` // set for pre-lexed tokens
	POS      []string `json:"pos"`
	Base     string   `json:"base,omitempty"`
	Reading  string   `json:"reading,omitempty"`
	Prelexed bool     `json:"prelexed"`
}

func elementOutputs(elems []morph.Element) []ElementOutput {
	out := make([]ElementOutput, len(elems))
	for i, e := range elems {
		o := ElementOutput{
			Text:     e.Surface,
			Start:    e.Span.Start,
			End:      e.Span.End,
			POS:      e.POS,
			Base:     e.Base,
			Reading:  e.Reading,
			Prelexed: e.Prelexed(),
		}
		if o.Prelexed {
			o.Kind = e.Kind.String()
		}
		out[i] = o
	}
	return out
}

// Elements renders an analyzed stream. Pretty output is one element per
// line: surface, POS hierarchy, base form and reading, tab separated the
// way MeCab-style tools print them. Pre-lexed tokens carry their kind in
// brackets.
func Elements(w io.Writer, kind Kind, elems []morph.Element, opts Options) error {
	switch kind {
	case KindJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(elementOutputs(elems))
	case KindJSONL:
		enc := json.NewEncoder(w)
		for _, o := range elementOutputs(elems) {
			if err := enc.Encode(o); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range elems {
		pos := strings.Join(e.POS, ",")
		if e.Prelexed() {
			c := kindColors[e.Kind]
			pos = paint(c, opts.Color, "["+e.Kind.String()+"]") + " " + pos
		}
		line := strings.Join([]string{escapeNL(e.Surface), pos, escapeNL(e.Base), e.Reading}, "\t")
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func escapeNL(s string) string { return strings.ReplaceAll(s, "\n", `\n`) }
