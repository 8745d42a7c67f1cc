package morph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// ParseMode maps "normal", "search" or "extended" to a kagome mode.
// An empty string selects normal.
func ParseMode(s string) (tokenizer.TokenizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return tokenizer.Normal, nil
	case "search":
		return tokenizer.Search, nil
	case "extended":
		return tokenizer.Extended, nil
	}
	return tokenizer.Normal, fmt.Errorf("unknown analyze mode %q (want normal|search|extended)", s)
}

// словарь IPA грузится один раз на процесс
var loadIPA = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
})

// Kagome analyzes text with kagome and the IPA dictionary.
type Kagome struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
}

// NewKagome loads the shared IPA tokenizer and binds it to mode.
func NewKagome(mode string) (*Kagome, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	t, err := loadIPA()
	if err != nil {
		return nil, fmt.Errorf("load ipa dictionary: %w", err)
	}
	return &Kagome{t: t, mode: m}, nil
}

// Analyze implements Analyzer. Spans of the returned morphemes are left
// zero; Merge computes them from the surfaces.
func (k *Kagome) Analyze(text string) ([]Morpheme, error) {
	toks := k.t.Analyze(text, k.mode)
	out := make([]Morpheme, 0, len(toks))
	for _, kt := range toks {
		if kt.Surface == "" {
			continue
		}
		base, ok := kt.BaseForm()
		if !ok || base == "*" {
			base = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		out = append(out, Morpheme{
			Surface: kt.Surface,
			POS:     trimPOS(kt.POS()),
			Base:    base,
			Reading: reading,
		})
	}
	return out, nil
}

// trimPOS drops the "*" placeholders IPA uses for unused levels.
func trimPOS(pos []string) []string {
	out := make([]string, 0, len(pos))
	for _, p := range pos {
		if p == "*" || p == "" {
			break
		}
		out = append(out, p)
	}
	return out
}
