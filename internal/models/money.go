package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money is a currency amount in minor units (cents).
type Money int64

const minorUnitDigits = 2

func Cents(c int64) Money {
	return Money(c)
}

// ParseMoney parses a decimal amount such as "25", "25.5" or "25,50", rounding to
// two fraction digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	// The separator that comes last is the decimal one: "1.234,56" and "1,234.56"
	// are the same amount.
	if comma := strings.LastIndex(s, ","); comma >= 0 {
		if comma > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return fromDecimal(d)
}

// fromDecimal rounds d to cents and rejects amounts that do not fit in a Money.
func fromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Shift(minorUnitDigits).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s is out of range", d.String())
	}

	return Money(cents.IntPart()), nil
}

// ParseTendered is the keystroke parser for the cash field: anything that is not a
// number counts as zero.
func ParseTendered(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		return 0
	}

	return m
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -minorUnitDigits)
}

func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnitDigits)
}

// Format renders the amount with a currency symbol, e.g. "R$ 25.00".
func (m Money) Format(symbol string) string {
	if symbol == "" {
		return m.String()
	}

	return symbol + " " + m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}

	parsed, err := fromDecimal(d)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

func (m Money) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseMoney(value.Value)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
