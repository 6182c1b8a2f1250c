package entities

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMoney = errors.New("invalid monetary value")

// Money is a monetary amount in integer centavos.
//
// Persisted JSON keeps the plain decimal number of the legacy dataset
// (150.5, 80), so existing backups load unchanged, while all arithmetic
// is exact integer math. Amounts beyond two decimal places are rounded
// half away from zero on read.
type Money int64

// Cents builds a Money from an integer amount of centavos.
func Cents(v int64) Money { return Money(v) }

func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// String renders the canonical two-decimal form with a dot separator.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// FormatBRL renders the pt-BR display form used on documents and share
// messages: dot thousands separator, comma decimals.
func (m Money) FormatBRL() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	intPart := fmt.Sprintf("%d", v/100)
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}
	return fmt.Sprintf("%s%s,%02d", sign, b.String(), v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMoney reads a decimal string into centavos without going through
// float64, so stored amounts survive round-trips exactly.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	var cents int64
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
		cents = cents*10 + int64(c-'0')
	}
	cents *= 100

	for i, c := range fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
		switch i {
		case 0:
			cents += int64(c-'0') * 10
		case 1:
			cents += int64(c - '0')
		case 2:
			// Round half away from zero on the third decimal.
			if c >= '5' {
				cents++
			}
		}
	}

	if neg {
		cents = -cents
	}
	return Money(cents), nil
}
