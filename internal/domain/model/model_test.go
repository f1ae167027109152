package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCartStatusValues(t *testing.T) {
	cases := []struct {
		status CartStatus
		value  string
	}{
		{CartStatusOpen, "OPEN"},
		{CartStatusSubmitted, "SUBMITTED"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
	}
}

func TestEffectivePricePrefersDiscount(t *testing.T) {
	discount := dec("9.99")
	p := Product{Price: dec("19.99"), DiscountPrice: &discount}
	if !p.EffectivePrice().Equal(discount) {
		t.Fatalf("expected discount price, got %s", p.EffectivePrice())
	}

	p.DiscountPrice = nil
	if !p.EffectivePrice().Equal(dec("19.99")) {
		t.Fatalf("expected full price, got %s", p.EffectivePrice())
	}
}

func TestCartTotalSumsLines(t *testing.T) {
	discount := dec("5.00")
	cart := Cart{Lines: []CartLine{
		{Quantity: 2, Product: &Product{Name: "Chess", Price: dec("10.00")}},
		{Quantity: 1, Product: &Product{Name: "Go", Price: dec("30.00"), DiscountPrice: &discount}},
	}}

	if got := cart.Total(); !got.Equal(dec("25.00")) {
		t.Fatalf("expected total 25.00, got %s", got)
	}
	if cart.Count() != 3 {
		t.Fatalf("expected 3 units, got %d", cart.Count())
	}
	if cart.IsEmpty() {
		t.Fatal("cart with lines reported empty")
	}
}

func TestCartTotalAppliesCouponOnce(t *testing.T) {
	cart := Cart{
		Coupon: &Coupon{Code: "SAVE4", Amount: dec("4.00")},
		Lines: []CartLine{
			{Quantity: 1, Product: &Product{Name: "Chess", Price: dec("10.00")}},
		},
	}

	if got := cart.Total(); !got.Equal(dec("6.00")) {
		t.Fatalf("expected total 6.00, got %s", got)
	}
}

func TestCartTotalMayGoNegative(t *testing.T) {
	cart := Cart{
		Coupon: &Coupon{Code: "BIG", Amount: dec("50.00")},
		Lines: []CartLine{
			{Quantity: 1, Product: &Product{Name: "Chess", Price: dec("10.00")}},
		},
	}

	if got := cart.Total(); !got.Equal(dec("-40.00")) {
		t.Fatalf("expected total -40.00, got %s", got)
	}
}

func TestCartDistinctProductNames(t *testing.T) {
	cart := Cart{Lines: []CartLine{
		{Product: &Product{Name: "Chess"}},
		{Product: &Product{Name: "Chess"}},
		{Product: &Product{Name: "Go"}},
	}}

	names := cart.DistinctProductNames()
	if len(names) != 2 {
		t.Fatalf("expected 2 distinct names, got %d", len(names))
	}
	if _, ok := names["Chess"]; !ok {
		t.Fatal("missing Chess")
	}
	if _, ok := names["Go"]; !ok {
		t.Fatal("missing Go")
	}
}

func TestValidOrderLineStatus(t *testing.T) {
	for _, s := range []OrderLineStatus{OrderLineStatusProcessing, OrderLineStatusSent, OrderLineStatusReceived, OrderLineStatusCancelled} {
		if !ValidOrderLineStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ValidOrderLineStatus("SHIPPED") {
		t.Fatal("unknown status reported valid")
	}
}

func TestValidAddressType(t *testing.T) {
	if !ValidAddressType(AddressTypeShipping) || !ValidAddressType(AddressTypeBilling) {
		t.Fatal("known address types reported invalid")
	}
	if ValidAddressType("HOME") {
		t.Fatal("unknown address type reported valid")
	}
}
