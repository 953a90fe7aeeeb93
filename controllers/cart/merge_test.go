package cartControllers

import (
	"testing"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

func TestMergeLineItemsSumsQuantities(t *testing.T) {
	dst := []models.CartItem{
		{OrderItemID: 1, ProductID: 7, SellingPrice: 1000, DiscountType: models.DiscountTypeFlat, Discount: 200, DiscountedPrice: 800, Quantity: 2, TotalPrice: 1600},
	}
	src := []models.CartItem{
		{OrderItemID: 9, ProductID: 7, SellingPrice: 1000, DiscountType: models.DiscountTypeFlat, Discount: 200, DiscountedPrice: 800, Quantity: 3, TotalPrice: 2400},
		{OrderItemID: 10, ProductID: 8, SellingPrice: 50, DiscountType: models.DiscountTypeNone, DiscountedPrice: 50, Quantity: 1, TotalPrice: 50},
	}

	merged := MergeLineItems(dst, src)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged lines, got %d", len(merged))
	}
	if merged[0].Quantity != 5 {
		t.Errorf("expected quantity 5 for product 7, got %d", merged[0].Quantity)
	}
	if merged[0].TotalPrice != 4000 {
		t.Errorf("expected total 4000 (800 * 5), got %v", merged[0].TotalPrice)
	}
	if merged[0].OrderItemID != 1 {
		t.Errorf("merged line must keep the primary cart's item id, got %d", merged[0].OrderItemID)
	}
	if merged[1].ProductID != 8 || merged[1].Quantity != 1 {
		t.Errorf("unmatched line should carry over untouched: %+v", merged[1])
	}
}

func TestMergeLineItemsRecomputesPriceFromDiscount(t *testing.T) {
	// Stale discounted price on the primary line must be renormalized from
	// the selling price and discount when quantities are combined.
	dst := []models.CartItem{
		{OrderItemID: 1, ProductID: 3, SellingPrice: 500, DiscountType: models.DiscountTypePercentage, Discount: 10, DiscountedPrice: 999, Quantity: 1},
	}
	src := []models.CartItem{
		{OrderItemID: 2, ProductID: 3, SellingPrice: 500, DiscountType: models.DiscountTypePercentage, Discount: 10, DiscountedPrice: 450, Quantity: 1},
	}
	merged := MergeLineItems(dst, src)
	if merged[0].DiscountedPrice != 450 {
		t.Errorf("expected renormalized price 450, got %v", merged[0].DiscountedPrice)
	}
	if merged[0].TotalPrice != 900 {
		t.Errorf("expected total 900, got %v", merged[0].TotalPrice)
	}
}

func TestMergeLineItemsEmptySource(t *testing.T) {
	dst := []models.CartItem{{OrderItemID: 1, ProductID: 1, Quantity: 1}}
	merged := MergeLineItems(dst, nil)
	if len(merged) != 1 {
		t.Fatalf("expected dst unchanged, got %d lines", len(merged))
	}
}
