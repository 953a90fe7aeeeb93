package pricing

import (
	"testing"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		name     string
		selling  float64
		dType    models.DiscountType
		discount float64
		want     float64
	}{
		{"percentage", 1000, models.DiscountTypePercentage, 10, 900},
		{"percentage rounds", 999, models.DiscountTypePercentage, 33, 669},
		{"percentage over 100 clamps", 500, models.DiscountTypePercentage, 150, 0},
		{"flat", 1000, models.DiscountTypeFlat, 200, 800},
		{"flat exceeding price clamps", 100, models.DiscountTypeFlat, 250, 0},
		{"free keeps unit price", 1000, models.DiscountTypeFree, 500, 1000},
		{"none keeps unit price", 1000, models.DiscountTypeNone, 500, 1000},
	}
	for _, tc := range cases {
		got := DiscountedPrice(tc.selling, tc.dType, tc.discount)
		if got != tc.want {
			t.Errorf("%s: DiscountedPrice(%v, %s, %v) = %v, want %v",
				tc.name, tc.selling, tc.dType, tc.discount, got, tc.want)
		}
		if got < 0 {
			t.Errorf("%s: discounted price went negative: %v", tc.name, got)
		}
	}
}

func TestNormalizeItemPricesIdempotent(t *testing.T) {
	item := models.CartItem{
		SellingPrice: 1000,
		DiscountType: models.DiscountTypeFlat,
		Discount:     200,
	}
	NormalizeItemPrices(&item)
	first := item.DiscountedPrice
	if first != 800 {
		t.Fatalf("expected discounted price 800, got %v", first)
	}
	NormalizeItemPrices(&item)
	if item.DiscountedPrice != first {
		t.Errorf("second normalization changed price: %v -> %v", first, item.DiscountedPrice)
	}

	pct := models.CartItem{
		SellingPrice: 500,
		DiscountType: models.DiscountTypePercentage,
		Discount:     10,
	}
	NormalizeItemPrices(&pct)
	NormalizeItemPrices(&pct)
	if pct.DiscountedPrice != 450 {
		t.Errorf("percentage renormalization drifted: got %v, want 450", pct.DiscountedPrice)
	}
}

func TestNormalizeItemPricesDefaultsType(t *testing.T) {
	item := models.CartItem{SellingPrice: 150}
	NormalizeItemPrices(&item)
	if item.DiscountType != models.DiscountTypeNone {
		t.Errorf("expected discount type none, got %s", item.DiscountType)
	}
	if item.DiscountedPrice != 150 {
		t.Errorf("expected discounted price 150, got %v", item.DiscountedPrice)
	}
}

func TestFreeQuantity(t *testing.T) {
	if got := FreeQuantity(7, 3, 2); got != 4 {
		t.Errorf("FreeQuantity(7,3,2) = %d, want 4", got)
	}
	if got := FreeQuantity(2, 3, 2); got != 0 {
		t.Errorf("FreeQuantity(2,3,2) = %d, want 0", got)
	}
	if got := FreeQuantity(5, 0, 2); got != 0 {
		t.Errorf("min purchase of 0 must yield 0 bonus units, got %d", got)
	}
}

func TestCalculateTotalsConsistency(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartItem{
			{
				ProductID:       7,
				SellingPrice:    1000,
				DiscountedPrice: 800,
				DiscountType:    models.DiscountTypeFlat,
				Discount:        200,
				Quantity:        1,
			},
			{
				ProductID:           9,
				SellingPrice:        50,
				DiscountedPrice:     50,
				DiscountType:        models.DiscountTypeFree,
				Quantity:            6,
				MinPurchaseQuantity: 3,
				FreeItemQuantity:    1,
			},
		},
	}
	CalculateTotals(&cart)

	var sum float64
	for _, item := range cart.Items {
		if item.TotalPrice != item.DiscountedPrice*float64(item.Quantity) {
			t.Errorf("item %d: total %v != discounted %v * qty %d",
				item.ProductID, item.TotalPrice, item.DiscountedPrice, item.Quantity)
		}
		sum += item.TotalPrice
	}
	if cart.SubTotal != sum {
		t.Errorf("sub total %v != sum of item totals %v", cart.SubTotal, sum)
	}
	if cart.GrandTotal != cart.SubTotal {
		t.Errorf("grand total %v must equal sub total %v", cart.GrandTotal, cart.SubTotal)
	}
	if cart.TotalDiscount != 200 {
		t.Errorf("total discount = %v, want 200", cart.TotalDiscount)
	}
	if cart.Items[1].FreeQuantity != 2 {
		t.Errorf("free quantity = %d, want 2", cart.Items[1].FreeQuantity)
	}
	if cart.Items[0].FreeQuantity != 0 {
		t.Errorf("non-free item must have 0 free quantity, got %d", cart.Items[0].FreeQuantity)
	}
}

func TestApplyAndResetPricingRoundTrip(t *testing.T) {
	p := models.Pricing{SellingPrice: 400}
	ApplyToPricing(&p, models.DiscountTypePercentage, 25, models.FreeOffer{})
	if p.DiscountedPrice != 300 {
		t.Fatalf("expected 300 after 25%% off 400, got %v", p.DiscountedPrice)
	}
	if !p.IsDiscounted {
		t.Fatal("expected IsDiscounted after a real reduction")
	}

	ResetPricing(&p)
	if p.DiscountedPrice != 400 || p.DiscountType != models.DiscountTypeNone {
		t.Errorf("reset left price %v type %s, want 400/none", p.DiscountedPrice, p.DiscountType)
	}
	if p.IsDiscounted || p.Discount != 0 {
		t.Errorf("reset left IsDiscounted=%v discount=%v", p.IsDiscounted, p.Discount)
	}
}

func TestApplyFreeOfferPricing(t *testing.T) {
	p := models.Pricing{SellingPrice: 90}
	offer := models.FreeOffer{MinQuantityOfPurchase: 2, FreeItemQuantity: 1, FreeItemDescription: "1 sachet"}
	ApplyToPricing(&p, models.DiscountTypeFree, 0, offer)
	if p.DiscountedPrice != 90 {
		t.Errorf("free offer must not change unit price, got %v", p.DiscountedPrice)
	}
	if !p.IsDiscounted {
		t.Error("free offer with bonus units should mark IsDiscounted")
	}
	if p.FreeOffer != offer {
		t.Errorf("free offer not stored: %+v", p.FreeOffer)
	}
}
