// Package prelex carves closed-form tokens (URLs, emails, dates, clock times,
// yen amounts, storage sizes, percentages, versions, hashtags, mentions and
// sentence boundaries) out of mixed Japanese/English UTF-8 text in a single
// left-to-right pass, leaving everything else as opaque spans for a
// downstream morphological analyzer.
//
// Invariants of every Result:
//   - tokens and spans, merged by offset, tile [0, len(text)) exactly;
//   - Token.Text == string(text[Start:End]) and is an owned copy;
//   - no two ranges overlap.
//
// Recognizers are plain functions of (text, pos); a Scanner only holds an
// immutable rule table, so it is safe for concurrent use.
package prelex
