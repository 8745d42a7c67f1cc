package prelex

import "prelex/internal/token"

// ScanVersion matches [vV]?N(.N)+ using the integer reader, so '.' is always
// a segment separator. Segments are taken greedily; a '.' not followed by a
// digit ends the version.
func ScanVersion(text []byte, pos int) (token.Token, bool) {
	c := NewCursor(text, pos)
	if b := c.Peek(); b == 'v' || b == 'V' {
		c.Bump()
	}
	head := readInteger(text, c.Off)
	if !head.ok() {
		return token.Token{}, false
	}
	c.Off = head.end

	segments := 0
	for c.Peek() == '.' {
		seg := readInteger(text, c.Off+1)
		if !seg.ok() {
			break
		}
		c.Off = seg.end
		segments++
	}
	if segments == 0 {
		return token.Token{}, false
	}
	return token.New(token.Version, text, pos, c.Off), true
}
