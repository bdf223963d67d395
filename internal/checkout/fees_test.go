package checkout

import (
	"testing"

	"tulynx-storefront/internal/domain"
)

func TestTaxCents(t *testing.T) {
	fees := DefaultFeeSchedule()
	if got := fees.TaxCents(25000); got != 2000 {
		t.Fatalf("expected 8%% tax of 2000, got %d", got)
	}
	// 8% of 99.99 is 7.9992, rounded half-up to 8.00.
	if got := fees.TaxCents(9999); got != 800 {
		t.Fatalf("expected rounded tax of 800, got %d", got)
	}
}

func TestProcessingFeeSchedule(t *testing.T) {
	fees := DefaultFeeSchedule()
	cases := []struct {
		method string
		want   int64
	}{
		{domain.PaymentMethodCredit, 200},
		{domain.PaymentMethodUPI, 100},
		{domain.PaymentMethodBankTransfer, 150},
		{domain.PaymentMethodCOD, 0},
		{"unknown", 0},
	}
	for _, c := range cases {
		if got := fees.ProcessingFeeCents(c.method, 10000); got != c.want {
			t.Fatalf("fee for %s on 10000 = %d, want %d", c.method, got, c.want)
		}
	}
}

func TestDeliveryTablePreservesPricing(t *testing.T) {
	fees := DefaultFeeSchedule()
	if fees.Delivery[domain.DeliveryStandard].FeeCents != 0 {
		t.Fatalf("standard delivery should be free")
	}
	express := fees.Delivery[domain.DeliveryExpress]
	priority := fees.Delivery[domain.DeliveryPriority]
	if priority.FeeCents >= express.FeeCents {
		t.Fatalf("priority (%d) expected cheaper than express (%d) per the fee table", priority.FeeCents, express.FeeCents)
	}
	if priority.Days >= express.Days {
		t.Fatalf("priority should deliver sooner than express")
	}
}

func TestDiscountRuleLookupIsCaseInsensitive(t *testing.T) {
	rules := DefaultDiscountRules()
	for _, code := range []string{"welcome10", "WELCOME10", " Welcome10 "} {
		rule, ok := rules.Lookup(code)
		if !ok {
			t.Fatalf("expected %q to resolve", code)
		}
		if got := rule(25000); got != 2500 {
			t.Fatalf("discount for %q = %d, want 2500", code, got)
		}
	}
	if _, ok := rules.Lookup("SUMMER50"); ok {
		t.Fatalf("unknown code should not resolve")
	}
}
