package value

import (
	"fmt"
	"strconv"
	"strings"

	"prelex/internal/token"
)

// Date is a Japanese calendar date. Month and Day are zero when absent.
// Values are not range-checked: "2024年13月" is a Date with Month 13.
type Date struct {
	Year, Month, Day int
}

func (Date) Kind() token.Kind { return token.Date }

func (d Date) String() string {
	switch {
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock is a time of day. Parts tells how many units were written:
// 1 for "14時", 2 for "14時30分", 3 for "14時30分15秒".
type Clock struct {
	Hour, Minute, Second int
	Parts                int
}

func (Clock) Kind() token.Kind { return token.Time }

func (c Clock) String() string {
	switch c.Parts {
	case 1:
		return fmt.Sprintf("%02d", c.Hour)
	case 2:
		return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// units parses "N glyph N glyph ..." into values following glyph order.
// The first glyph is mandatory; later ones may stop early.
func units(surface string, glyphs ...string) ([]int, error) {
	s := narrow(surface)
	out := make([]int, 0, len(glyphs))
	for _, g := range glyphs {
		if s == "" {
			break
		}
		num, rest := splitNumber(s)
		if num == "" || !strings.HasPrefix(rest, g) {
			return nil, errSurface
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		s = rest[len(g):]
	}
	if s != "" || len(out) == 0 {
		return nil, errSurface
	}
	return out, nil
}

func parseDate(surface string) (Date, error) {
	parts, err := units(surface, "年", "月", "日")
	if err != nil {
		return Date{}, err
	}
	d := Date{Year: parts[0]}
	if len(parts) > 1 {
		d.Month = parts[1]
	}
	if len(parts) > 2 {
		d.Day = parts[2]
	}
	return d, nil
}

func parseClock(surface string) (Clock, error) {
	parts, err := units(surface, "時", "分", "秒")
	if err != nil {
		return Clock{}, err
	}
	c := Clock{Hour: parts[0], Parts: len(parts)}
	if len(parts) > 1 {
		c.Minute = parts[1]
	}
	if len(parts) > 2 {
		c.Second = parts[2]
	}
	return c, nil
}
