package morph

import (
	"fmt"
	"strings"

	"prelex/internal/prelex"
	"prelex/internal/source"
	"prelex/internal/token"
)

// Morpheme is one analyzer unit. Span is relative to the analyzed text
// when returned by an Analyzer and absolute after Merge.
type Morpheme struct {
	Surface string
	Span    source.Span
	POS     []string // part-of-speech hierarchy, most general first
	Base    string
	Reading string
}

// Analyzer splits text into morphemes in order of appearance.
type Analyzer interface {
	Analyze(text string) ([]Morpheme, error)
}

// Element is one unit of the final stream: a pre-lexed token or a morpheme.
type Element struct {
	Span    source.Span
	Surface string
	Kind    token.Kind // token.Invalid for morphemes
	POS     []string
	Base    string
	Reading string
}

// Prelexed reports whether the element came from the pre-lexer.
func (e Element) Prelexed() bool { return e.Kind != token.Invalid }

// Merge walks res in emission order. Tokens pass through untouched; each
// span is handed to a on its own and the returned morphemes are rebased
// to absolute offsets.
func Merge(text []byte, res prelex.Result, a Analyzer) ([]Element, error) {
	items := res.Items()
	out := make([]Element, 0, len(items))
	for _, it := range items {
		if it.Token != nil {
			tok := it.Token
			out = append(out, Element{
				Span:    tok.Span,
				Surface: tok.Text,
				Kind:    tok.Kind,
				POS:     []string{tok.POS.String()},
				Base:    tok.Text,
			})
			continue
		}
		chunk := string(it.Span.Slice(text))
		ms, err := a.Analyze(chunk)
		if err != nil {
			return nil, fmt.Errorf("analyze span %v: %w", it.Span, err)
		}
		ms, err = rebase(chunk, ms, it.Span.Start)
		if err != nil {
			return nil, fmt.Errorf("span %v: %w", it.Span, err)
		}
		for _, m := range ms {
			out = append(out, Element{
				Span:    m.Span,
				Surface: m.Surface,
				POS:     m.POS,
				Base:    m.Base,
				Reading: m.Reading,
			})
		}
	}
	return out, nil
}

// rebase locates each surface in chunk from a running offset and shifts the
// result by base. Analyzers may skip bytes (e.g. whitespace) but must keep
// order.
func rebase(chunk string, ms []Morpheme, base uint32) ([]Morpheme, error) {
	off := 0
	for i := range ms {
		if ms[i].Surface == "" {
			return nil, fmt.Errorf("morpheme %d has empty surface", i)
		}
		at := strings.Index(chunk[off:], ms[i].Surface)
		if at < 0 {
			return nil, fmt.Errorf("morpheme %q not found after offset %d", ms[i].Surface, off)
		}
		start := off + at
		off = start + len(ms[i].Surface)
		ms[i].Span = source.NewSpan(start, off).ShiftRight(base)
	}
	return ms, nil
}
