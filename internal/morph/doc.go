// Package morph runs a morphological analyzer over the text the pre-lexer
// left unrecognized and merges the result with the pre-lexed tokens into a
// single ordered stream.
//
// Span boundaries are hard breaks: the analyzer sees each unrecognized span
// on its own, so a morpheme never straddles a pre-lexed token.
package morph
