package prelex

import "testing"

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	c := NewCursor([]byte("a\nb"), 0)
	for _, want := range []byte("a\nb") {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if c.Peek() != want {
			t.Fatalf("Peek = %q, want %q", c.Peek(), want)
		}
		if b := c.Bump(); b != want {
			t.Fatalf("Bump = %q, want %q", b, want)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatalf("expected clean EOF")
	}
}

func TestPeek2(t *testing.T) {
	c := NewCursor([]byte("ab"), 0)
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Fatalf("Peek2 must fail with one byte left")
	}
}

func TestEatVariants(t *testing.T) {
	c := NewCursor([]byte("HTTPS://年x"), 0)
	if c.EatLit("https://") {
		t.Fatalf("EatLit is case-sensitive")
	}
	if !c.EatFold("https://") || c.Off != 8 {
		t.Fatalf("EatFold failed, off=%d", c.Off)
	}
	m := c.Mark()
	if !c.EatLit("年") || c.Off != 11 {
		t.Fatalf("EatLit(年) failed, off=%d", c.Off)
	}
	c.Reset(m)
	if c.Off != 8 {
		t.Fatalf("Reset did not restore offset")
	}
	if c.Eat('x') {
		t.Fatalf("Eat must not consume a mismatch")
	}
	if n := c.EatWhile(func(b byte) bool { return b >= 0x80 }); n != 3 {
		t.Fatalf("EatWhile consumed %d bytes", n)
	}
	if !c.Eat('x') || !c.EOF() {
		t.Fatalf("expected to finish on x")
	}
}
