package prelex

import "unicode/utf8"

// decodeRune decodes one codepoint at pos and returns it with the position
// right after it. Malformed input yields utf8.RuneError and advances by one
// byte; next is always > pos.
func decodeRune(text []byte, pos int) (r rune, next int) {
	if pos >= len(text) {
		return utf8.RuneError, pos + 1
	}
	b := text[pos]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), pos + 1
	}
	r, sz := utf8.DecodeRune(text[pos:])
	if sz < 1 {
		sz = 1
	}
	return r, pos + sz
}
