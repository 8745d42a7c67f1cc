package prelex

import (
	"fmt"

	"prelex/internal/source"
	"prelex/internal/token"
)

// Result holds the output of one scan. Tokens and Spans are each ordered by
// offset; merged together they tile the input.
type Result struct {
	Tokens []token.Token
	Spans  []source.Span
}

// Item is one element of the merged stream: either a token or a span.
type Item struct {
	Token *token.Token // nil for spans
	Span  source.Span
}

// IsToken reports whether the item is a recognized token.
func (it Item) IsToken() bool { return it.Token != nil }

// Items merges tokens and spans back into emission order.
func (r *Result) Items() []Item {
	out := make([]Item, 0, len(r.Tokens)+len(r.Spans))
	ti, si := 0, 0
	for ti < len(r.Tokens) || si < len(r.Spans) {
		if si >= len(r.Spans) || (ti < len(r.Tokens) && r.Tokens[ti].Span.Start < r.Spans[si].Start) {
			tok := &r.Tokens[ti]
			out = append(out, Item{Token: tok, Span: tok.Span})
			ti++
			continue
		}
		out = append(out, Item{Span: r.Spans[si]})
		si++
	}
	return out
}

// Counts returns how many tokens of each kind were produced.
func (r *Result) Counts() map[token.Kind]int {
	out := make(map[token.Kind]int, len(token.Kinds))
	for _, t := range r.Tokens {
		out[t.Kind]++
	}
	return out
}

// Check verifies the partition invariants against the scanned text:
// contiguous non-empty ranges covering [0, len(text)) and token surfaces
// equal to the bytes they cover.
func (r *Result) Check(text []byte) error {
	var pos uint32
	for i, it := range r.Items() {
		sp := it.Span
		if sp.Start != pos {
			return fmt.Errorf("item %d (%v) starts at %d, expected %d", i, sp, sp.Start, pos)
		}
		if sp.Empty() {
			return fmt.Errorf("item %d is empty at %d", i, sp.Start)
		}
		if int(sp.End) > len(text) {
			return fmt.Errorf("item %d (%v) ends past input length %d", i, sp, len(text))
		}
		if it.Token != nil {
			if it.Token.Text != string(sp.Slice(text)) {
				return fmt.Errorf("token %d %v surface %q does not match input %q", i, it.Token.Kind, it.Token.Text, sp.Slice(text))
			}
			if it.Token.Kind == token.Invalid {
				return fmt.Errorf("token %d has invalid kind", i)
			}
		}
		pos = sp.End
	}
	if int(pos) != len(text) {
		return fmt.Errorf("items cover [0,%d), input has %d bytes", pos, len(text))
	}
	return nil
}
