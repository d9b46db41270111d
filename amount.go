package secondbrain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in the wallet's single display currency.
// The currency setting determines the symbol only, so Amount carries no
// currency of its own. Balances are rounded to 2 decimals after every
// mutation; intermediate arithmetic stays exact.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }

// Round returns the amount rounded to 2 decimal places.
func (a Amount) Round() Amount { return Amount{value: a.value.Round(2)} }

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }

// Float64 returns the nearest float64. For display series only, the exact
// value stays in the decimal.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// String returns the plain decimal representation, e.g. "1234.5".
func (a Amount) String() string { return a.value.String() }

// Display formats the amount with the symbol and conventions of the given
// ISO currency code, e.g. Display("EUR") -> "€1,234.50".
func (a Amount) Display(code string) string {
	// The Money constructor guarantees a non-nil currency even for codes
	// go-money does not know about.
	cur := *money.New(0, code).Currency()
	minor := a.value.Round(2).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// MarshalJSON persists the amount as a plain JSON number with 2 decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.Round(2).String()), nil
}

// UnmarshalJSON accepts plain JSON numbers as well as quoted numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d
	return nil
}
