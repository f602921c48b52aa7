package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a G$ token amount in base units of 1e-8 G$, mirroring the
// 8-fractional-digit precision of the on-chain token.
type Amount int64

// Unit is one whole G$ in base units.
const Unit Amount = 100_000_000

// GDollars converts a whole G$ count to an Amount.
func GDollars(n int64) Amount {
	return Amount(n) * Unit
}

// MulHundredths multiplies the amount by a multiplier expressed in
// hundredths of 1x (169 = 1.69x). Used for bet payouts.
func (a Amount) MulHundredths(mult int) Amount {
	return a * Amount(mult) / 100
}

// String renders the amount in G$ with trailing zeros trimmed, e.g. "150",
// "12.5", "0.00000001".
func (a Amount) String() string {
	neg := a < 0
	if neg {
		a = -a
	}
	whole := a / Unit
	frac := a % Unit

	s := fmt.Sprintf("%d", whole)
	if frac != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%08d", frac), "0")
	}
	if neg {
		return "-" + s
	}
	return s
}

// ParseAmount parses a decimal G$ string ("150", "12.5", "0.00000001")
// with at most 8 fractional digits.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	wholePart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		wholePart, fracPart = s[:i], s[i+1:]
	}
	if wholePart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	// Digits only past the optional leading minus: ParseInt alone would let
	// a sign buried in the fraction ("1.-5") or a "+" prefix through.
	if !digitsOnly(wholePart) || !digitsOnly(fracPart) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(fracPart) > 8 {
		return 0, fmt.Errorf("amount %q exceeds 8 fractional digits", s)
	}

	var whole int64
	if wholePart != "" {
		var err error
		whole, err = strconv.ParseInt(wholePart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	var frac int64
	if fracPart != "" {
		var err error
		frac, err = strconv.ParseInt(fracPart+strings.Repeat("0", 8-len(fracPart)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	a := Amount(whole)*Unit + Amount(frac)
	if neg {
		a = -a
	}
	return a, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalJSON renders the amount as a decimal G$ string, keeping API
// payloads free of base-unit integers and float rounding.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
