// Package value interprets the surface of recognized tokens.
//
// The scanner only classifies byte ranges; this package turns a token into
// a typed value (a calendar date, an amount of yen, a byte size, a semantic
// version) for callers that need more than the surface.
package value
