package invoice

import (
	"fmt"
	"strings"
)

// Field names one of the seven values carried by a line-item form.
type Field string

const (
	FieldQuantity           Field = "quantity"
	FieldUnitPrice          Field = "unit_price"
	FieldDiscountPercentage Field = "discount_percentage"
	FieldDiscountAmount     Field = "discount_amount"
	FieldTaxPercentage      Field = "tax_percentage"
	FieldTaxAmount          Field = "tax_amount"
	FieldTotalPrice         Field = "total_price"
)

// InputFields lists the fields a user may set, in form order.
var InputFields = []Field{
	FieldQuantity,
	FieldUnitPrice,
	FieldDiscountPercentage,
	FieldTaxPercentage,
}

// Derived reports whether f is computed rather than entered.
func (f Field) Derived() bool {
	switch f {
	case FieldDiscountAmount, FieldTaxAmount, FieldTotalPrice:
		return true
	}
	return false
}

// Label is the human-facing column heading for f.
func (f Field) Label() string {
	switch f {
	case FieldQuantity:
		return "Quantity"
	case FieldUnitPrice:
		return "Price"
	case FieldDiscountPercentage:
		return "Discount %"
	case FieldDiscountAmount:
		return "Discount"
	case FieldTaxPercentage:
		return "Tax %"
	case FieldTaxAmount:
		return "Tax"
	case FieldTotalPrice:
		return "Total Price"
	}
	return string(f)
}

// ParseField accepts the canonical name plus a few short aliases ("qty",
// "price", "discount", "tax").
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quantity", "qty":
		return FieldQuantity, nil
	case "unit_price", "price":
		return FieldUnitPrice, nil
	case "discount_percentage", "discount":
		return FieldDiscountPercentage, nil
	case "tax_percentage", "tax":
		return FieldTaxPercentage, nil
	case "discount_amount":
		return FieldDiscountAmount, nil
	case "tax_amount":
		return FieldTaxAmount, nil
	case "total_price", "total":
		return FieldTotalPrice, nil
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// FormState is the working copy behind the editor form. The first four
// fields hold raw user input verbatim; the amounts are display strings
// produced by Derive.
type FormState struct {
	Quantity           string
	UnitPrice          string
	DiscountPercentage string
	DiscountAmount     string
	TaxPercentage      string
	TaxAmount          string
	TotalPrice         string
}

// EmptyForm returns the all-blank state used at startup and after submit.
func EmptyForm() FormState {
	return FormState{}
}

// Value returns the stored string for f.
func (s FormState) Value(f Field) string {
	switch f {
	case FieldQuantity:
		return s.Quantity
	case FieldUnitPrice:
		return s.UnitPrice
	case FieldDiscountPercentage:
		return s.DiscountPercentage
	case FieldDiscountAmount:
		return s.DiscountAmount
	case FieldTaxPercentage:
		return s.TaxPercentage
	case FieldTaxAmount:
		return s.TaxAmount
	case FieldTotalPrice:
		return s.TotalPrice
	}
	return ""
}

// UpdateField stores raw under f and re-derives the amounts. Derived or
// unknown fields are not settable: the inputs stay as they were and the
// amounts are recomputed from them.
func UpdateField(s FormState, f Field, raw string) FormState {
	switch f {
	case FieldQuantity:
		s.Quantity = raw
	case FieldUnitPrice:
		s.UnitPrice = raw
	case FieldDiscountPercentage:
		s.DiscountPercentage = raw
	case FieldTaxPercentage:
		s.TaxPercentage = raw
	}
	return Derive(s)
}
