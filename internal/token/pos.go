package token

// POS is a coarse part-of-speech tag from the downstream analyzer's vocabulary.
type POS uint8

const (
	// POSUnknown is never attached to an emitted token.
	POSUnknown POS = iota
	// POSNoun marks numeric and named entities.
	POSNoun
	// POSSymbol marks addresses and punctuation.
	POSSymbol
)

func (p POS) String() string {
	switch p {
	case POSNoun:
		return "Noun"
	case POSSymbol:
		return "Symbol"
	default:
		return "Unknown"
	}
}
