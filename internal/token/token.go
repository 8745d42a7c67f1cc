package token

import (
	"prelex/internal/source"
)

// Token is a closed-form entity carved out of the input.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	POS  POS
}

// New builds a token over text[start:end], copying the surface.
func New(kind Kind, text []byte, start, end int) Token {
	sp := source.NewSpan(start, end)
	return Token{
		Kind: kind,
		Span: sp,
		Text: string(text[start:end]),
		POS:  kind.POS(),
	}
}

// IsNumeric reports whether the token is digit-anchored.
func (t Token) IsNumeric() bool {
	switch t.Kind {
	case Date, Time, Currency, Version, Storage, Percentage:
		return true
	default:
		return false
	}
}

// IsAddress reports whether the token is a URL or an email address.
func (t Token) IsAddress() bool { return t.Kind == URL || t.Kind == Email }

// IsBoundary reports whether the token terminates a sentence.
func (t Token) IsBoundary() bool { return t.Kind == Boundary }
