package value

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"prelex/internal/token"
)

// Value is the typed interpretation of one token.
type Value interface {
	Kind() token.Kind
	String() string
}

// ErrKind is returned for tokens that carry no interpretable kind.
var ErrKind = errors.New("value: token kind has no value")

// Of interprets tok. It fails when the surface does not follow the grammar
// of its kind or, for URLs, when net/url rejects it.
func Of(tok token.Token) (Value, error) {
	var (
		v   Value
		err error
	)
	switch tok.Kind {
	case token.URL:
		v, err = parseURL(tok.Text)
	case token.Email:
		v, err = parseEmail(tok.Text)
	case token.Date:
		v, err = parseDate(tok.Text)
	case token.Time:
		v, err = parseClock(tok.Text)
	case token.Currency:
		v, err = parseMoney(tok.Text)
	case token.Storage:
		v, err = parseSize(tok.Text)
	case token.Percentage:
		v, err = parsePercent(tok.Text)
	case token.Version:
		v, err = parseVersion(tok.Text)
	case token.Hashtag:
		v, err = parseTag(tok.Text)
	case token.Mention:
		v, err = parseMention(tok.Text)
	case token.Boundary:
		v, err = parseBoundary(tok.Text)
	default:
		return nil, fmt.Errorf("%w: %v", ErrKind, tok.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%v %q: %w", tok.Kind, tok.Text, err)
	}
	return v, nil
}

// MustOf is like Of but panics on error. Intended for tests.
func MustOf(tok token.Token) Value {
	v, err := Of(tok)
	if err != nil {
		panic(err)
	}
	return v
}

// narrow maps full-width digits and signs to ASCII: "１,０００％" → "1,000%".
func narrow(s string) string {
	return width.Narrow.String(s)
}

// splitNumber cuts the leading run of ASCII digits, ',' and '.' off s.
// Commas are dropped from the returned number.
func splitNumber(s string) (number, rest string) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == ',' || s[i] == '.') {
		i++
	}
	return strings.ReplaceAll(s[:i], ",", ""), s[i:]
}

var errSurface = errors.New("unexpected surface")
