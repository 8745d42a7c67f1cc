package prelex

import "prelex/internal/token"

// ScanEmail matches local@domain.tld.
//
//	local  = seg ("." seg)*      seg = [A-Za-z0-9+_-]+
//	domain = label ("." label)+  label = [A-Za-z0-9-]+
//
// A dot is only consumed when a segment follows it, so a sentence-final
// period after the address stays outside the token.
func ScanEmail(text []byte, pos int) (token.Token, bool) {
	c := NewCursor(text, pos)
	if c.EatWhile(isEmailLocalByte) == 0 {
		return token.Token{}, false
	}
	for dottedNext(&c, isEmailLocalByte) {
	}
	if !c.Eat('@') {
		return token.Token{}, false
	}
	if c.EatWhile(isDomainByte) == 0 {
		return token.Token{}, false
	}
	labels := 1
	for dottedNext(&c, isDomainByte) {
		labels++
	}
	if labels < 2 {
		return token.Token{}, false
	}
	return token.New(token.Email, text, pos, c.Off), true
}

// dottedNext consumes "." followed by a non-empty run of pred bytes.
func dottedNext(c *Cursor, pred func(byte) bool) bool {
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '.' || !pred(b1) {
		return false
	}
	c.Bump()
	c.EatWhile(pred)
	return true
}
