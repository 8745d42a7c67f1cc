package prelex

import "unicode"

// ===== Классификаторы =====

func isDec(b byte) bool   { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool { return isDec(b) || isAlpha(b) }

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Full-width digits U+FF10..U+FF19 encode as EF BC 90..99.
const fullWidthDigitLen = 3

func isFullWidthDigitAt(text []byte, pos int) bool {
	return pos+2 < len(text) && text[pos] == 0xEF && text[pos+1] == 0xBC &&
		text[pos+2] >= 0x90 && text[pos+2] <= 0x99
}

// digitAt reports whether an ASCII or full-width digit starts at pos and
// returns its ASCII form and encoded width.
func digitAt(text []byte, pos int) (ascii byte, width int, ok bool) {
	if pos >= len(text) {
		return 0, 0, false
	}
	if isDec(text[pos]) {
		return text[pos], 1, true
	}
	if isFullWidthDigitAt(text, pos) {
		return '0' + (text[pos+2] - 0x90), fullWidthDigitLen, true
	}
	return 0, 0, false
}

// hasAt reports whether lit occurs in text at pos.
func hasAt(text []byte, pos int, lit string) bool {
	return len(text)-pos >= len(lit) && string(text[pos:pos+len(lit)]) == lit
}

// hasFoldAt is hasAt with ASCII case folding; lit must be lower-case ASCII.
func hasFoldAt(text []byte, pos int, lit string) bool {
	if len(text)-pos < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if lower(text[pos+i]) != lit[i] {
			return false
		}
	}
	return true
}

// firstOf returns the first of lits found at pos and the position after it.
func firstOf(text []byte, pos int, lits ...string) (string, int, bool) {
	for _, lit := range lits {
		if hasAt(text, pos, lit) {
			return lit, pos + len(lit), true
		}
	}
	return "", pos, false
}

func isURLByte(b byte) bool {
	if isAlnum(b) {
		return true
	}
	switch b {
	case '-', '.', '_', '~', ':', '/', '?', '#', '[', ']', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '%':
		return true
	}
	return false
}

func isEmailLocalByte(b byte) bool {
	return isAlnum(b) || b == '+' || b == '_' || b == '-'
}

func isDomainByte(b byte) bool {
	return isAlnum(b) || b == '-'
}

func isHandleByte(b byte) bool {
	return isAlnum(b) || b == '_'
}

// isWordRune covers letters of any script (kana, kanji, hangul, latin), digits
// and combining marks such as the voiced sound marks.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
