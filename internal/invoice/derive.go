package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places kept in derived amounts.
const AmountPlaces = 2

// maxExponent bounds the scale of a parsed amount. Inputs such as
// "1e2147483647" would otherwise overflow the decimal exponent on
// multiplication or expand into millions of digits when formatted.
const maxExponent = 64

// Breakdown carries every intermediate of the line-item calculation,
// unrounded.
type Breakdown struct {
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	AfterDiscount decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// ParseAmount reads a user-entered number. Empty or malformed input is
// zero, and so is a number whose decimal exponent lies outside
// ±maxExponent; callers never see a parse error.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders d as a fixed-point string with AmountPlaces
// decimals, rounding half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces)
}

// Compute runs the calculation over the raw inputs of s. Percentages are
// applied as given, including negative values and values above 100.
func Compute(s FormState) Breakdown {
	qty := ParseAmount(s.Quantity)
	price := ParseAmount(s.UnitPrice)
	discountPct := ParseAmount(s.DiscountPercentage)
	taxPct := ParseAmount(s.TaxPercentage)

	subtotal := qty.Mul(price)
	discount := subtotal.Mul(discountPct).Shift(-2)
	afterDiscount := subtotal.Sub(discount)
	tax := afterDiscount.Mul(taxPct).Shift(-2)

	return Breakdown{
		Subtotal:      subtotal,
		Discount:      discount,
		AfterDiscount: afterDiscount,
		Tax:           tax,
		Total:         afterDiscount.Add(tax),
	}
}

// Derive returns s with DiscountAmount, TaxAmount and TotalPrice
// recomputed from the four raw inputs. The inputs pass through untouched.
func Derive(s FormState) FormState {
	b := Compute(s)
	s.DiscountAmount = FormatAmount(b.Discount)
	s.TaxAmount = FormatAmount(b.Tax)
	s.TotalPrice = FormatAmount(b.Total)
	return s
}
