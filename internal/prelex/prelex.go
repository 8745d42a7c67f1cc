package prelex

import (
	"context"
	"slices"
	"strconv"

	"prelex/internal/source"
	"prelex/internal/token"
	"prelex/internal/trace"
)

// Options configures a Scanner.
type Options struct {
	// Disable removes rules producing these kinds from dispatch.
	// Boundary cannot be disabled.
	Disable []token.Kind
}

// Scanner applies an ordered rule table to text. The zero value is not
// usable; call New. A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	rules []Rule
}

var defaultScanner = New(Options{})

// New builds a scanner over the default priority table.
func New(opts Options) *Scanner {
	rules := make([]Rule, 0, len(defaultRules))
	for _, r := range defaultRules {
		if slices.Contains(opts.Disable, r.Kind) {
			continue
		}
		rules = append(rules, r)
	}
	return &Scanner{rules: rules}
}

// Rules returns the scanner's active rules in priority order.
func (s *Scanner) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Process scans text with the default scanner.
// Offsets are uint32: text must not exceed source.MaxFileSize bytes, larger
// input panics. The driver rejects it with source.ErrTooLarge before scanning.
func Process(text []byte) Result {
	return defaultScanner.Process(text)
}

// ProcessString is Process for string input.
func ProcessString(text string) Result {
	return defaultScanner.Process([]byte(text))
}

// ProcessContext scans text inside a trace span taken from ctx.
func ProcessContext(ctx context.Context, text []byte) Result {
	return defaultScanner.ProcessContext(ctx, text)
}

// ProcessContext is Process wrapped in a pass-level trace span.
func (s *Scanner) ProcessContext(ctx context.Context, text []byte) Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "prelex", trace.CurrentSpan(ctx).SpanID)
	res := s.Process(text)
	span.WithExtra("bytes", strconv.Itoa(len(text))).
		WithExtra("tokens", strconv.Itoa(len(res.Tokens))).
		WithExtra("spans", strconv.Itoa(len(res.Spans))).
		End("")
	return res
}

// Process makes one left-to-right pass over text. At each position the rules
// are tried in order; the first match is emitted together with the pending
// unmatched span. When nothing matches, one codepoint is either emitted as a
// Boundary token or folded into the pending span. The size limit of the
// package-level Process applies.
func (s *Scanner) Process(text []byte) Result {
	var res Result
	pos, spanStart := 0, 0

	flush := func() {
		if pos > spanStart {
			res.Spans = append(res.Spans, source.NewSpan(spanStart, pos))
		}
	}

	for pos < len(text) {
		tok, ok := s.match(text, pos)
		if !ok {
			tok, ok = ScanBoundary(text, pos)
		}
		if ok {
			flush()
			res.Tokens = append(res.Tokens, tok)
			pos = int(tok.Span.End)
			spanStart = pos
			continue
		}
		_, pos = decodeRune(text, pos)
	}
	flush()
	return res
}

func (s *Scanner) match(text []byte, pos int) (token.Token, bool) {
	for _, r := range s.rules {
		if tok, ok := r.Match(text, pos); ok && int(tok.Span.End) > pos {
			return tok, true
		}
	}
	return token.Token{}, false
}
