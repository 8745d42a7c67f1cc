package morph

import (
	"errors"
	"slices"
	"testing"
	"unicode"
	"unicode/utf8"

	"prelex/internal/prelex"
	"prelex/internal/token"
)

// scriptAnalyzer splits text where the script class changes and drops
// whitespace, which is enough to exercise rebasing.
type scriptAnalyzer struct {
	calls []string
}

func class(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case unicode.Is(unicode.Han, r):
		return 1
	case unicode.Is(unicode.Hiragana, r):
		return 2
	case unicode.Is(unicode.Katakana, r):
		return 3
	}
	return 4
}

func (a *scriptAnalyzer) Analyze(text string) ([]Morpheme, error) {
	a.calls = append(a.calls, text)
	var out []Morpheme
	start, prev := 0, -1
	emit := func(end int) {
		if prev > 0 && end > start {
			out = append(out, Morpheme{Surface: text[start:end], POS: []string{"名詞"}})
		}
	}
	for i, r := range text {
		c := class(r)
		if c != prev {
			emit(i)
			start, prev = i, c
		}
	}
	emit(len(text))
	return out, nil
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(string) ([]Morpheme, error) { return nil, errors.New("boom") }

type liarAnalyzer struct{}

func (liarAnalyzer) Analyze(string) ([]Morpheme, error) {
	return []Morpheme{{Surface: "存在しない"}}, nil
}

func TestMergeKeepsTokensAndRebasesMorphemes(t *testing.T) {
	text := []byte("明日は14時30分に 会議。")
	res := prelex.Process(text)
	a := &scriptAnalyzer{}
	got, err := Merge(text, res, a)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	want := []struct {
		surface string
		kind    token.Kind
	}{
		{"明日", token.Invalid},
		{"は", token.Invalid},
		{"14時30分", token.Time},
		{"に", token.Invalid},
		{"会議", token.Invalid},
		{"。", token.Boundary},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d elements: %+v", len(got), got)
	}
	for i, w := range want {
		e := got[i]
		if e.Surface != w.surface || e.Kind != w.kind {
			t.Errorf("element %d = %q %v, want %q %v", i, e.Surface, e.Kind, w.surface, w.kind)
		}
		if string(e.Span.Slice(text)) != e.Surface {
			t.Errorf("element %d span %v covers %q, surface %q", i, e.Span, e.Span.Slice(text), e.Surface)
		}
		if e.Prelexed() != (w.kind != token.Invalid) {
			t.Errorf("element %d Prelexed mismatch", i)
		}
	}
	// each span is analyzed on its own
	if !slices.Equal(a.calls, []string{"明日は", "に 会議"}) {
		t.Errorf("analyzer calls = %q", a.calls)
	}
}

func TestMergeTokenPOS(t *testing.T) {
	text := []byte("https://example.com")
	got, err := Merge(text, prelex.Process(text), &scriptAnalyzer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].POS[0] != token.POSSymbol.String() {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestMergeErrors(t *testing.T) {
	text := []byte("テキスト")
	if _, err := Merge(text, prelex.Process(text), failingAnalyzer{}); err == nil {
		t.Fatalf("expected analyzer error")
	}
	if _, err := Merge(text, prelex.Process(text), liarAnalyzer{}); err == nil {
		t.Fatalf("expected rebase error")
	}
}

func TestParseMode(t *testing.T) {
	for _, ok := range []string{"", "normal", "Search", " extended "} {
		if _, err := ParseMode(ok); err != nil {
			t.Errorf("ParseMode(%q): %v", ok, err)
		}
	}
	if _, err := ParseMode("fast"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestTrimPOS(t *testing.T) {
	got := trimPOS([]string{"名詞", "固有名詞", "*", "*"})
	if !slices.Equal(got, []string{"名詞", "固有名詞"}) {
		t.Fatalf("trimPOS = %v", got)
	}
}

func TestKagomeAnalyze(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the IPA dictionary")
	}
	k, err := NewKagome("normal")
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("今日は2024年1月15日です。")
	got, err := Merge(text, prelex.Process(text), k)
	if err != nil {
		t.Fatal(err)
	}
	var joined string
	for _, e := range got {
		if !utf8.ValidString(e.Surface) {
			t.Fatalf("invalid surface %q", e.Surface)
		}
		joined += e.Surface
	}
	if joined != string(text) {
		t.Fatalf("elements do not rebuild the text: %q", joined)
	}
	var date bool
	for _, e := range got {
		if e.Kind == token.Date && e.Surface == "2024年1月15日" {
			date = true
		}
	}
	if !date {
		t.Fatalf("date token lost: %+v", got)
	}
}
