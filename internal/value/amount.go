package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"prelex/internal/token"
)

// Money is an amount of yen. Digits keeps the written number without
// commas, Magnitude is "", "万", "億" or "兆" and Yen is the whole amount
// as an integer string, rounded to the nearest yen.
type Money struct {
	Digits    string
	Magnitude string
	Yen       string
}

func (Money) Kind() token.Kind { return token.Currency }
func (m Money) String() string { return "¥" + m.Yen }

var magnitudes = map[string]int64{
	"":  1,
	"万": 1e4,
	"億": 1e8,
	"兆": 1e12,
}

func parseMoney(surface string) (Money, error) {
	num, rest := splitNumber(narrow(surface))
	rest, ok := strings.CutSuffix(rest, "円")
	if num == "" || !ok {
		return Money{}, errSurface
	}
	mul, ok := magnitudes[rest]
	if !ok {
		return Money{}, errSurface
	}
	amount, ok := new(big.Rat).SetString(num)
	if !ok {
		return Money{}, errSurface
	}
	amount.Mul(amount, new(big.Rat).SetInt64(mul))
	return Money{Digits: num, Magnitude: rest, Yen: amount.FloatString(0)}, nil
}

// Size is a storage amount. Unit is "", "K", "M", "G" or "T"; Bytes uses
// 1024 multiples.
type Size struct {
	Digits string
	Unit   string
	Bytes  float64
}

func (Size) Kind() token.Kind { return token.Storage }
func (s Size) String() string { return s.Digits + s.Unit + "B" }

const sizeUnits = "KMGT"

func parseSize(surface string) (Size, error) {
	num, rest := splitNumber(narrow(surface))
	rest = strings.ToUpper(rest)
	rest, ok := strings.CutSuffix(rest, "B")
	if num == "" || !ok || len(rest) > 1 {
		return Size{}, errSurface
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Size{}, err
	}
	exp := 0
	if rest != "" {
		i := strings.Index(sizeUnits, rest)
		if i < 0 {
			return Size{}, errSurface
		}
		exp = i + 1
	}
	return Size{Digits: num, Unit: rest, Bytes: f * math.Pow(1024, float64(exp))}, nil
}

// Percent is a percentage; Value is the written number (50 for "50%").
type Percent struct {
	Digits string
	Value  float64
}

func (Percent) Kind() token.Kind { return token.Percentage }
func (p Percent) String() string { return p.Digits + "%" }

// Ratio returns the percentage as a fraction of one.
func (p Percent) Ratio() float64 { return p.Value / 100 }

func parsePercent(surface string) (Percent, error) {
	num, rest := splitNumber(narrow(surface))
	if num == "" || rest != "%" {
		return Percent{}, errSurface
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Percent{}, err
	}
	return Percent{Digits: num, Value: f}, nil
}
