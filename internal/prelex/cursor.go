package prelex

// Cursor is a byte position inside an immutable text.
// Recognizers create one per attempt; it never outlives the call.
type Cursor struct {
	Text []byte
	Off  int
}

// Mark это метка, чтобы откатываться к последней удачной позиции.
type Mark int

// NewCursor creates a cursor at pos.
func NewCursor(text []byte, pos int) Cursor {
	return Cursor{Text: text, Off: pos}
}

// EOF проверяет, достигнут ли конец текста.
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Text)
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Text[c.Off]
}

// Peek2 читает текущий и следующий байт.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= len(c.Text) {
		return 0, 0, false
	}
	return c.Text[c.Off], c.Text[c.Off+1], true
}

// Bump перемещает курсор на один байт вперёд и возвращает прочитанный байт.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatLit consumes lit if it occurs at the cursor.
func (c *Cursor) EatLit(lit string) bool {
	if hasAt(c.Text, c.Off, lit) {
		c.Off += len(lit)
		return true
	}
	return false
}

// EatFold consumes lower-case ASCII lit ignoring case.
func (c *Cursor) EatFold(lit string) bool {
	if hasFoldAt(c.Text, c.Off, lit) {
		c.Off += len(lit)
		return true
	}
	return false
}

// EatWhile consumes bytes while pred holds and returns how many were eaten.
func (c *Cursor) EatWhile(pred func(byte) bool) int {
	start := c.Off
	for !c.EOF() && pred(c.Text[c.Off]) {
		c.Off++
	}
	return c.Off - start
}

// PeekRune decodes the codepoint at the cursor without consuming it.
func (c *Cursor) PeekRune() (r rune, next int) {
	return decodeRune(c.Text, c.Off)
}

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Reset возвращает курсор назад к метке.
func (c *Cursor) Reset(m Mark) { c.Off = int(m) }
