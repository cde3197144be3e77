package reward

import "github.com/shopspring/decimal"

type DiscountType string

const (
	DiscountFixed   DiscountType = "FIXED"
	DiscountPercent DiscountType = "PERCENT"
)

var hundred = decimal.NewFromInt(100)

type Discount struct {
	Type  DiscountType
	Value decimal.Decimal
}

// Apply returns the discount taken off total and what remains to pay. The discount
// never exceeds total and the remainder never goes below zero.
func (d Discount) Apply(total decimal.Decimal) (amount, remaining decimal.Decimal) {
	if !total.IsPositive() || !d.Value.IsPositive() {
		return decimal.Zero, decimal.Max(total, decimal.Zero)
	}

	switch d.Type {
	case DiscountFixed:
		amount = decimal.Min(d.Value, total)
	case DiscountPercent:
		pct := decimal.Min(d.Value, hundred)
		amount = total.Mul(pct).Div(hundred).Round(2)
	default:
		amount = decimal.Zero
	}

	amount = decimal.Min(amount, total)
	remaining = decimal.Max(total.Sub(amount), decimal.Zero)

	return amount, remaining
}
