package prelex

import "prelex/internal/token"

// ScanURL matches http:// or https:// (any case) followed by URL-safe bytes.
// Trailing . , ) ' are left to the surrounding sentence.
func ScanURL(text []byte, pos int) (token.Token, bool) {
	c := NewCursor(text, pos)
	if !c.EatFold("https://") && !c.EatFold("http://") {
		return token.Token{}, false
	}
	body := c.Off
	c.EatWhile(isURLByte)

	end := c.Off
	for end > body {
		switch text[end-1] {
		case '.', ',', ')', '\'':
			end--
			continue
		}
		break
	}
	if end == body {
		return token.Token{}, false
	}
	return token.New(token.URL, text, pos, end), true
}
