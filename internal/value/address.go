package value

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"prelex/internal/token"
)

// URL is an http or https address.
type URL struct {
	Raw    string
	Scheme string // lower-cased
	Host   string
	Path   string
}

func (URL) Kind() token.Kind { return token.URL }
func (u URL) String() string { return u.Raw }

func parseURL(surface string) (URL, error) {
	u, err := url.Parse(surface)
	if err != nil {
		return URL{}, err
	}
	if u.Host == "" {
		return URL{}, errSurface
	}
	return URL{Raw: surface, Scheme: strings.ToLower(u.Scheme), Host: u.Host, Path: u.Path}, nil
}

// Email is a mail address split at '@'.
type Email struct {
	Local, Domain string
}

func (Email) Kind() token.Kind { return token.Email }
func (e Email) String() string { return e.Local + "@" + e.Domain }

func parseEmail(surface string) (Email, error) {
	local, domain, ok := strings.Cut(surface, "@")
	if !ok || local == "" || domain == "" {
		return Email{}, errSurface
	}
	return Email{Local: local, Domain: strings.ToLower(domain)}, nil
}

// Tag is a hashtag without its '#' or '＃' prefix. Key is the NFKC,
// lower-cased form used to group spellings like "＃Ｇｏ" and "#go".
type Tag struct {
	Name string
	Key  string
}

func (Tag) Kind() token.Kind { return token.Hashtag }
func (t Tag) String() string { return "#" + t.Name }

func parseTag(surface string) (Tag, error) {
	name, ok := strings.CutPrefix(surface, "#")
	if !ok {
		name, ok = strings.CutPrefix(surface, "＃")
	}
	if !ok || name == "" {
		return Tag{}, errSurface
	}
	return Tag{Name: name, Key: strings.ToLower(norm.NFKC.String(name))}, nil
}

// Mention is an @handle without the '@'.
type Mention struct {
	Name string
}

func (Mention) Kind() token.Kind { return token.Mention }
func (m Mention) String() string { return "@" + m.Name }

func parseMention(surface string) (Mention, error) {
	name, ok := strings.CutPrefix(surface, "@")
	if !ok || name == "" {
		return Mention{}, errSurface
	}
	return Mention{Name: name}, nil
}

// Boundary is a sentence terminator.
type Boundary struct {
	Rune rune
}

func (Boundary) Kind() token.Kind { return token.Boundary }
func (b Boundary) String() string { return string(b.Rune) }

// Newline reports whether the boundary is a line break rather than punctuation.
func (b Boundary) Newline() bool { return b.Rune == '\n' }

func parseBoundary(surface string) (Boundary, error) {
	r, size := utf8.DecodeRuneInString(surface)
	if r == utf8.RuneError || size != len(surface) {
		return Boundary{}, errSurface
	}
	return Boundary{Rune: r}, nil
}
