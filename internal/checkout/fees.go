package checkout

import (
	"strings"

	"tulynx-storefront/internal/domain"
)

// DeliveryOption is one row in the delivery fee table.
type DeliveryOption struct {
	FeeCents int64
	Days     int
}

// FeeSchedule holds the pricing tables applied at checkout. All rates are
// basis points so fee arithmetic stays on integer cents.
type FeeSchedule struct {
	TaxBasisPoints int64
	// ProcessingBasisPoints maps a payment method to the surcharge applied
	// to subtotal + tax - discount.
	ProcessingBasisPoints map[string]int64
	Delivery              map[string]DeliveryOption
}

// DiscountRule computes a discount in cents from the cart subtotal.
type DiscountRule func(subtotalCents int64) int64

// DiscountRules maps a normalized promo code to its rule. Codes are
// matched case-insensitively; unknown codes are a silent no-op.
type DiscountRules map[string]DiscountRule

// DefaultFeeSchedule mirrors the storefront's published pricing: 8% tax,
// credit 2% / upi 1% / bank 1.5% / cod free, and delivery at
// standard free (+5d), express 9.99 (+2d), priority 4.99 (+1d).
// Priority undercutting express is intentional table data.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		TaxBasisPoints: 800,
		ProcessingBasisPoints: map[string]int64{
			domain.PaymentMethodCredit:       200,
			domain.PaymentMethodUPI:          100,
			domain.PaymentMethodBankTransfer: 150,
			domain.PaymentMethodCOD:          0,
		},
		Delivery: map[string]DeliveryOption{
			domain.DeliveryStandard: {FeeCents: 0, Days: 5},
			domain.DeliveryExpress:  {FeeCents: 999, Days: 2},
			domain.DeliveryPriority: {FeeCents: 499, Days: 1},
		},
	}
}

// DefaultDiscountRules carries the single launch promo: welcome10 takes
// 10% off the subtotal.
func DefaultDiscountRules() DiscountRules {
	return DiscountRules{
		"welcome10": func(subtotalCents int64) int64 {
			return applyBasisPoints(subtotalCents, 1000)
		},
	}
}

// Lookup resolves a promo code, ignoring case and surrounding space.
// The second return reports whether the code is known.
func (r DiscountRules) Lookup(code string) (DiscountRule, bool) {
	rule, ok := r[strings.ToLower(strings.TrimSpace(code))]
	return rule, ok
}

// applyBasisPoints computes amount*bp/10000 rounded half-up to the cent.
func applyBasisPoints(amountCents, bp int64) int64 {
	return (amountCents*bp + 5000) / 10000
}

// TaxCents computes the tax owed on a subtotal.
func (f FeeSchedule) TaxCents(subtotalCents int64) int64 {
	return applyBasisPoints(subtotalCents, f.TaxBasisPoints)
}

// ProcessingFeeCents computes the payment surcharge for a method on the
// post-tax, post-discount amount. Unknown methods carry no fee.
func (f FeeSchedule) ProcessingFeeCents(method string, amountCents int64) int64 {
	return applyBasisPoints(amountCents, f.ProcessingBasisPoints[method])
}
