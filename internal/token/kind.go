package token

import "strings"

// Kind represents the category of a pre-lexed token.
type Kind uint8

const (
	// Invalid is the zero Kind; the pre-lexer never emits it.
	Invalid Kind = iota

	// URL is an http:// or https:// address.
	URL
	// Email is a local@domain.tld address.
	Email
	// Date is a 年/月/日 date expression.
	Date
	// Time is a 時/分/秒 clock expression.
	Time
	// Currency is a yen amount, optionally with 万/億/兆.
	Currency
	// Version is a dotted software version (v1.2.3).
	Version
	// Storage is a byte size (10GB, 512kb).
	Storage
	// Percentage is a number followed by % or ％.
	Percentage
	// Hashtag is #tag or ＃タグ.
	Hashtag
	// Mention is @name.
	Mention
	// Boundary is one sentence-terminating codepoint.
	Boundary
)

// Kinds lists every emitted kind in declaration order.
var Kinds = [...]Kind{URL, Email, Date, Time, Currency, Version, Storage, Percentage, Hashtag, Mention, Boundary}

var kindNames = [...]string{
	Invalid:    "Invalid",
	URL:        "Url",
	Email:      "Email",
	Date:       "Date",
	Time:       "Time",
	Currency:   "Currency",
	Version:    "Version",
	Storage:    "Storage",
	Percentage: "Percentage",
	Hashtag:    "Hashtag",
	Mention:    "Mention",
	Boundary:   "Boundary",
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool { return k > Invalid && k <= Boundary }

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// ParseKind converts a canonical name (case-insensitive) back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(kindNames[k], s) {
			return k, true
		}
	}
	return Invalid, false
}

// POS returns the coarse part-of-speech tag attached to tokens of this kind.
func (k Kind) POS() POS {
	switch k {
	case URL, Email, Boundary:
		return POSSymbol
	case Date, Time, Currency, Version, Storage, Percentage:
		return POSNoun
	case Hashtag, Mention:
		// имена собственные: тег и упоминание ведут себя как существительные
		return POSNoun
	default:
		return POSUnknown
	}
}
