package prelex

import "prelex/internal/token"

func inRange(lo, hi int) func(int) bool {
	return func(n int) bool { return n >= lo && n <= hi }
}

var timeUnits = []unit{
	{glyph: glyphHour, maxDigits: 2, valid: inRange(0, 24)},
	{glyph: glyphMinute, maxDigits: 2, valid: inRange(0, 59)},
	{glyph: glyphSecond, maxDigits: 2, valid: inRange(0, 59)},
}

// ScanTime matches H時, H時M分 and H時M分S秒 with hour 0-24 and minute and
// second 0-59. An out-of-range minute or second truncates the match at the
// previous unit ("14時60分" yields "14時"); an out-of-range hour rejects it.
func ScanTime(text []byte, pos int) (token.Token, bool) {
	return scanUnits(text, pos, token.Time, timeUnits)
}
