package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceLine is one order line as the calculator sees it: quantity times the
// unit price snapshotted from the menu.
type PriceLine struct {
	MenuItemID uint
	Quantity   int
	UnitPrice  decimal.Decimal
}

type PriceBreakdown struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// CalculatePrice derives all monetary fields of an order. taxRate is a
// percentage (10 means 10%). When capDiscount is set the discount is clamped
// to the subtotal so a total can never go negative from discounting alone.
//
// total = subtotal - discount + tax + deliveryFee, tax rounded to 2 decimals.
func CalculatePrice(lines []PriceLine, taxRate, discount, deliveryFee decimal.Decimal, capDiscount bool) (PriceBreakdown, error) {
	if len(lines) == 0 {
		return PriceBreakdown{}, fmt.Errorf("%w: order needs at least one line", ErrValidation)
	}
	if discount.IsNegative() {
		return PriceBreakdown{}, fmt.Errorf("%w: discount must not be negative", ErrValidation)
	}
	if deliveryFee.IsNegative() {
		return PriceBreakdown{}, fmt.Errorf("%w: delivery fee must not be negative", ErrValidation)
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity < 1 {
			return PriceBreakdown{}, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if l.UnitPrice.IsNegative() {
			return PriceBreakdown{}, fmt.Errorf("%w: unit price must not be negative", ErrValidation)
		}
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if capDiscount && discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	tax := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Sub(discount).Add(tax).Add(deliveryFee)

	return PriceBreakdown{
		Subtotal:    subtotal,
		Tax:         tax,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Total:       total,
	}, nil
}

// LineSubtotal is quantity times unit price, the value stored on each item.
func LineSubtotal(qty int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}
