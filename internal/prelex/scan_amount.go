package prelex

import "prelex/internal/token"

const (
	glyphYen     = "円"
	glyphMan     = "万"
	glyphOku     = "億"
	glyphCho     = "兆"
	fullPercent  = "％"
	storageUnits = "kmgt"
)

// ScanCurrency matches a decimal amount, an optional 万/億/兆 and a mandatory 円.
func ScanCurrency(text []byte, pos int) (token.Token, bool) {
	run := readDecimal(text, pos)
	if !run.ok() {
		return token.Token{}, false
	}
	end := run.end
	if _, next, ok := firstOf(text, end, glyphMan, glyphOku, glyphCho); ok {
		end = next
	}
	if !hasAt(text, end, glyphYen) {
		return token.Token{}, false
	}
	return token.New(token.Currency, text, pos, end+len(glyphYen)), true
}

// ScanStorage matches a decimal amount, an optional K/M/G/T and a mandatory B (any case).
func ScanStorage(text []byte, pos int) (token.Token, bool) {
	run := readDecimal(text, pos)
	if !run.ok() {
		return token.Token{}, false
	}
	c := NewCursor(text, run.end)
	for i := 0; i < len(storageUnits); i++ {
		if c.EatFold(storageUnits[i : i+1]) {
			break
		}
	}
	if !c.EatFold("b") {
		return token.Token{}, false
	}
	return token.New(token.Storage, text, pos, c.Off), true
}

// ScanPercentage matches a decimal amount followed by % or ％.
func ScanPercentage(text []byte, pos int) (token.Token, bool) {
	run := readDecimal(text, pos)
	if !run.ok() {
		return token.Token{}, false
	}
	c := NewCursor(text, run.end)
	if !c.Eat('%') && !c.EatLit(fullPercent) {
		return token.Token{}, false
	}
	return token.New(token.Percentage, text, pos, c.Off), true
}
