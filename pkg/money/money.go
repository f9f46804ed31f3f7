package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Prefix is the literal currency prefix used everywhere a value is displayed.
const Prefix = "R$ "

// Amount is a BRL monetary value backed by a fixed-point decimal.
// The zero value is R$ 0,00 and ready to use.
type Amount struct {
	value decimal.Decimal
}

// Zero returns an Amount of R$ 0,00.
func Zero() Amount {
	return Amount{}
}

// FromDecimal builds an Amount from a decimal, rounded to two fraction digits.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{value: d.Round(2)}
}

// FromFloat builds an Amount from a float, rounded to two fraction digits.
func FromFloat(f float64) Amount {
	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse reads a Brazilian-formatted monetary string such as "R$ 1.234,56",
// "R$ 10,00" or "5,50". The currency prefix is optional, dots are treated as
// thousands separators and the comma as the decimal separator.
func Parse(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	if raw == "" {
		return Amount{}, fmt.Errorf("money: empty value")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, fmt.Errorf("money: invalid value %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the value as a float. Display formatting should use
// String instead; this exists for wire shapes that carry plain numbers.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// IsZero reports whether the amount is R$ 0,00.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// String formats the amount as "R$ n,nn" with two fraction digits and a
// decimal comma.
func (a Amount) String() string {
	return Prefix + strings.Replace(a.value.StringFixed(2), ".", ",", 1)
}

// MarshalJSON emits the amount as a plain two-decimal number, matching the
// totals wire shape.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.StringFixed(2)), nil
}

// UnmarshalJSON accepts either a plain number or a formatted string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = FromFloat(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
