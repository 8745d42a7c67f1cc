package prelex

import "prelex/internal/token"

const fullHash = "＃"

// ScanHashtag matches '#' or '＃' followed by a non-empty run of word
// characters: ASCII alnum, '_' or any letter/digit/mark codepoint.
func ScanHashtag(text []byte, pos int) (token.Token, bool) {
	c := NewCursor(text, pos)
	if !c.Eat('#') && !c.EatLit(fullHash) {
		return token.Token{}, false
	}
	body := c.Off
	for !c.EOF() {
		if b := c.Peek(); b < 0x80 {
			if !isHandleByte(b) {
				break
			}
			c.Bump()
			continue
		}
		r, next := c.PeekRune()
		if !isWordRune(r) {
			break
		}
		c.Off = next
	}
	if c.Off == body {
		return token.Token{}, false
	}
	return token.New(token.Hashtag, text, pos, c.Off), true
}

// ScanMention matches '@' followed by a non-empty run of [A-Za-z0-9_].
func ScanMention(text []byte, pos int) (token.Token, bool) {
	c := NewCursor(text, pos)
	if !c.Eat('@') {
		return token.Token{}, false
	}
	if c.EatWhile(isHandleByte) == 0 {
		return token.Token{}, false
	}
	return token.New(token.Mention, text, pos, c.Off), true
}

// IsBoundaryRune reports whether r terminates a sentence: 。！？!? or newline.
func IsBoundaryRune(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '\n':
		return true
	}
	return false
}

// ScanBoundary matches exactly one sentence-terminating codepoint.
func ScanBoundary(text []byte, pos int) (token.Token, bool) {
	if pos >= len(text) {
		return token.Token{}, false
	}
	r, next := decodeRune(text, pos)
	if !IsBoundaryRune(r) {
		return token.Token{}, false
	}
	return token.New(token.Boundary, text, pos, next), true
}
