package value_test

import (
	"errors"
	"testing"

	"prelex/internal/prelex"
	"prelex/internal/token"
	"prelex/internal/value"
)

// firstToken scans input and returns its only recognized token.
func firstToken(t *testing.T, input string) token.Token {
	t.Helper()
	res := prelex.ProcessString(input)
	if len(res.Tokens) != 1 {
		t.Fatalf("%q: expected one token, got %d", input, len(res.Tokens))
	}
	return res.Tokens[0]
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024年", "2024"},
		{"2024年1月", "2024-01"},
		{"２０２４年１月５日", "2024-01-05"},
		{"9時", "09"},
		{"14時30分", "14:30"},
		{"14時30分5秒", "14:30:05"},
		{"1,000円", "¥1000"},
		{"1.5億円", "¥150000000"},
		{"３万円", "¥30000"},
		{"10gb", "10GB"},
		{"50％", "50%"},
		{"v1.2", "1.2.0"},
		{"1.2.3.4", "1.2.3.4"},
		{"https://example.com/a", "https://example.com/a"},
		{"Me@Example.COM", "Me@example.com"},
		{"＃タグ", "#タグ"},
		{"@gopher", "@gopher"},
		{"。", "。"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := firstToken(t, tt.input)
			v, err := value.Of(tok)
			if err != nil {
				t.Fatalf("Of: %v", err)
			}
			if v.Kind() != tok.Kind {
				t.Fatalf("kind %v, token kind %v", v.Kind(), tok.Kind)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateFields(t *testing.T) {
	d := value.MustOf(firstToken(t, "2024年13月40日")).(value.Date)
	if d.Year != 2024 || d.Month != 13 || d.Day != 40 {
		t.Fatalf("unexpected date %+v", d)
	}
	d = value.MustOf(firstToken(t, "2024年")).(value.Date)
	if d.Month != 0 || d.Day != 0 {
		t.Fatalf("absent units must be zero: %+v", d)
	}
}

func TestClockParts(t *testing.T) {
	c := value.MustOf(firstToken(t, "0時0分")).(value.Clock)
	if c.Hour != 0 || c.Minute != 0 || c.Parts != 2 {
		t.Fatalf("unexpected clock %+v", c)
	}
}

func TestMoney(t *testing.T) {
	m := value.MustOf(firstToken(t, "2.5兆円")).(value.Money)
	if m.Digits != "2.5" || m.Magnitude != "兆" || m.Yen != "2500000000000" {
		t.Fatalf("unexpected money %+v", m)
	}
}

func TestSizeBytes(t *testing.T) {
	tests := []struct {
		input string
		bytes float64
	}{
		{"100B", 100},
		{"1KB", 1024},
		{"1.5MB", 1.5 * 1024 * 1024},
		{"2TB", 2 * 1024 * 1024 * 1024 * 1024},
	}
	for _, tt := range tests {
		s := value.MustOf(firstToken(t, tt.input)).(value.Size)
		if s.Bytes != tt.bytes {
			t.Errorf("%s: Bytes = %v, want %v", tt.input, s.Bytes, tt.bytes)
		}
	}
}

func TestPercentRatio(t *testing.T) {
	p := value.MustOf(firstToken(t, "12.5%")).(value.Percent)
	if p.Value != 12.5 || p.Ratio() != 0.125 {
		t.Fatalf("unexpected percent %+v", p)
	}
}

func TestVersionCompare(t *testing.T) {
	ver := func(s string) value.Version {
		return value.MustOf(firstToken(t, s)).(value.Version)
	}
	if ver("v1.10").Compare(ver("1.9")) <= 0 {
		t.Errorf("1.10 must be greater than 1.9")
	}
	if ver("1.2.3.4").Semver != nil {
		t.Errorf("four segments are not semver")
	}
	if ver("1.2.3.10").Compare(ver("1.2.3.9")) <= 0 {
		t.Errorf("segment comparison must be numeric")
	}
	if ver("1.02.3.4").Compare(ver("1.2.3.4")) != 0 {
		t.Errorf("leading zeros must not matter")
	}
	if got := ver("v2.0.1").Segments(); len(got) != 3 || got[0] != "2" {
		t.Errorf("Segments = %v", got)
	}
}

func TestURLFields(t *testing.T) {
	u := value.MustOf(firstToken(t, "HTTPS://Example.com/path?q=1")).(value.URL)
	if u.Scheme != "https" || u.Host != "Example.com" || u.Path != "/path" {
		t.Fatalf("unexpected url %+v", u)
	}
}

func TestBoundaryNewline(t *testing.T) {
	if !value.MustOf(firstToken(t, "\n")).(value.Boundary).Newline() {
		t.Fatalf("newline boundary expected")
	}
}

func TestInvalidKind(t *testing.T) {
	_, err := value.Of(token.Token{Kind: token.Invalid, Text: "x"})
	if !errors.Is(err, value.ErrKind) {
		t.Fatalf("expected ErrKind, got %v", err)
	}
}

func TestMalformedSurface(t *testing.T) {
	bad := []token.Token{
		{Kind: token.Date, Text: "年"},
		{Kind: token.Currency, Text: "100"},
		{Kind: token.Storage, Text: "10XB"},
		{Kind: token.Percentage, Text: "%"},
		{Kind: token.Hashtag, Text: "#"},
		{Kind: token.Boundary, Text: "。。"},
	}
	for _, tok := range bad {
		if _, err := value.Of(tok); err == nil {
			t.Errorf("%v %q: expected error", tok.Kind, tok.Text)
		}
	}
}

func TestTagKey(t *testing.T) {
	for _, surface := range []string{"#go", "#Go", "＃Ｇｏ"} {
		v, err := value.Of(token.Token{Kind: token.Hashtag, Text: surface})
		if err != nil {
			t.Fatalf("%q: %v", surface, err)
		}
		tag := v.(value.Tag)
		if tag.Key != "go" {
			t.Errorf("%q: key = %q, want go", surface, tag.Key)
		}
	}
}
