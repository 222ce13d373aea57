// Package money is the only place where display-currency amounts are converted
// to and from the base minor units stored in accounts and intents.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a display amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Converter converts between the caller's display currency and base minor units.
type Converter struct {
	// Rate is the number of display-currency units per one base-currency unit.
	Rate decimal.Decimal
	// Exponent is the number of minor digits of the base currency (2 for cents).
	Exponent int32
	// DisplayPlaces is the number of decimals used when formatting display amounts.
	DisplayPlaces int32
}

// NewConverter creates a Converter. A non-positive rate is rejected.
func NewConverter(rate decimal.Decimal, exponent int32) (*Converter, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	if exponent < 0 {
		return nil, fmt.Errorf("currency exponent must not be negative, got %d", exponent)
	}
	return &Converter{Rate: rate, Exponent: exponent, DisplayPlaces: 2}, nil
}

// Identity returns a converter whose display currency is the base currency.
func Identity(exponent int32) *Converter {
	return &Converter{Rate: decimal.NewFromInt(1), Exponent: exponent, DisplayPlaces: exponent}
}

// ParseToBase parses a display amount such as "150.25" and converts it to base minor units.
func (c *Converter) ParseToBase(display string) (int64, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	return c.ToBase(d)
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// ToBase converts a display amount to base minor units, rounding half away from zero.
// Amounts that do not fit in an int64 are rejected.
func (c *Converter) ToBase(display decimal.Decimal) (int64, error) {
	minor := display.Div(c.Rate).Shift(c.Exponent).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, display)
	}
	return minor.IntPart(), nil
}

// FromBase converts base minor units to a display amount. Presentation only.
func (c *Converter) FromBase(minor int64) decimal.Decimal {
	return decimal.New(minor, -c.Exponent).Mul(c.Rate).Round(c.DisplayPlaces)
}

// Format renders base minor units as a fixed-point display string.
func (c *Converter) Format(minor int64) string {
	return c.FromBase(minor).StringFixed(c.DisplayPlaces)
}
