package prelex

import "prelex/internal/token"

// Recognizer is a pure matcher: it inspects text at pos and returns the
// token starting there, if any. It must not retain text.
type Recognizer func(text []byte, pos int) (token.Token, bool)

// Rule binds a recognizer to the kind it produces.
type Rule struct {
	Kind  token.Kind
	Name  string
	Match Recognizer
}

// defaultRules is the fixed priority order; earlier rules win at the same
// position. Percentage precedes Version so "3.14%" is not cut at "3.14".
// Boundary is not listed: it is the dispatcher's fallback step.
var defaultRules = [...]Rule{
	{Kind: token.URL, Name: "url", Match: ScanURL},
	{Kind: token.Email, Name: "email", Match: ScanEmail},
	{Kind: token.Date, Name: "date", Match: ScanDate},
	{Kind: token.Time, Name: "time", Match: ScanTime},
	{Kind: token.Currency, Name: "currency", Match: ScanCurrency},
	{Kind: token.Storage, Name: "storage", Match: ScanStorage},
	{Kind: token.Percentage, Name: "percentage", Match: ScanPercentage},
	{Kind: token.Version, Name: "version", Match: ScanVersion},
	{Kind: token.Hashtag, Name: "hashtag", Match: ScanHashtag},
	{Kind: token.Mention, Name: "mention", Match: ScanMention},
}

// RulesVersion changes whenever the rule table or a grammar changes; caches
// of scan results are keyed by it.
const RulesVersion = 2

// Rules returns a copy of the default priority table.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules[:])
	return out
}

// RuleFor returns the default rule producing kind.
func RuleFor(kind token.Kind) (Rule, bool) {
	for _, r := range defaultRules {
		if r.Kind == kind {
			return r, true
		}
	}
	return Rule{}, false
}
