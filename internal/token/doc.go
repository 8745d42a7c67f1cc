// Package token defines the closed-form token kinds produced by the pre-lexer.
// Invariants:
//   - Token.Text is an owned copy of the matched bytes, never a view into the input.
//   - Token.Span matches Text exactly (Start..End, half-open, byte offsets).
//   - Every token kind maps to exactly one coarse part-of-speech tag (see Kind.POS).
package token
