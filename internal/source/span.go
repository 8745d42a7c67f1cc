package source

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) into UTF-8 text.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// MaxFileSize is the largest content a Span can address.
const MaxFileSize = math.MaxUint32

// ErrTooLarge is returned for input whose offsets do not fit a Span.
var ErrTooLarge = errors.New("input too large")

// CheckSize reports ErrTooLarge when n bytes cannot be addressed by a Span.
func CheckSize(n int) error {
	if uint64(n) > MaxFileSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, n, uint64(MaxFileSize))
	}
	return nil
}

// NewSpan converts int offsets into a Span. Offsets beyond uint32 are a programming error.
func NewSpan(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{Start: s, End: e}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Overlaps reports whether the two ranges share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Slice returns the bytes of text covered by the span.
func (s Span) Slice(text []byte) []byte {
	return text[s.Start:s.End]
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}
