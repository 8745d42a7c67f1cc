package prelex

import "prelex/internal/token"

// Unit glyphs of the date and clock grammars.
const (
	glyphYear   = "年"
	glyphMonth  = "月"
	glyphDay    = "日"
	glyphHour   = "時"
	glyphMinute = "分"
	glyphSecond = "秒"
)

// unit is one "digits + glyph" step of a date or clock expression.
type unit struct {
	glyph     string
	maxDigits int
	valid     func(n int) bool // nil: any value is accepted
}

// closeUnit parses a unit at pos. It reports the position after the glyph
// and whether the unit closed; on failure the caller keeps its last end.
func closeUnit(text []byte, pos int, u unit) (int, bool) {
	run := readInteger(text, pos)
	if !run.ok() || run.count > u.maxDigits {
		return pos, false
	}
	if !hasAt(text, run.end, u.glyph) {
		return pos, false
	}
	if u.valid != nil && !u.valid(atoi(run.digits)) {
		return pos, false
	}
	return run.end + len(u.glyph), true
}

// scanUnits closes the first unit (mandatory) and then as many of the
// optional ones as possible, freezing at the last closed unit.
func scanUnits(text []byte, pos int, kind token.Kind, units []unit) (token.Token, bool) {
	end, ok := closeUnit(text, pos, units[0])
	if !ok {
		return token.Token{}, false
	}
	for _, u := range units[1:] {
		next, ok := closeUnit(text, end, u)
		if !ok {
			break
		}
		end = next
	}
	return token.New(kind, text, pos, end), true
}

var dateUnits = []unit{
	{glyph: glyphYear, maxDigits: 4},
	{glyph: glyphMonth, maxDigits: 2},
	{glyph: glyphDay, maxDigits: 2},
}

// ScanDate matches Y年, Y年M月 and Y年M月D日. Values are not range-checked.
func ScanDate(text []byte, pos int) (token.Token, bool) {
	return scanUnits(text, pos, token.Date, dateUnits)
}

// atoi parses a short normalized ASCII digit string.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}
