package discountControllers

import (
	"math"
	"testing"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

func applyReq(targetType, discountType string, discount float64) ApplyDiscountRequest {
	return ApplyDiscountRequest{
		Target:       Target{Type: targetType, ProductIDs: []uint{1}, Category: "Skincare"},
		DiscountType: discountType,
		Discount:     discount,
	}
}

func TestValidateTarget(t *testing.T) {
	if err := ValidateTarget(Target{Type: "all"}); err != nil {
		t.Errorf("all target: %v", err)
	}
	if err := ValidateTarget(Target{Type: "selected"}); err != ErrNoProductIDs {
		t.Errorf("selected without ids: got %v, want ErrNoProductIDs", err)
	}
	if err := ValidateTarget(Target{Type: "category"}); err != ErrNoCategory {
		t.Errorf("category without name: got %v, want ErrNoCategory", err)
	}
	if err := ValidateTarget(Target{Type: "category", Category: "Skincare", SubCategory: "Serums"}); err != nil {
		t.Errorf("category with subcategory: %v", err)
	}
	if err := ValidateTarget(Target{Type: "everything"}); err != ErrInvalidTarget {
		t.Errorf("unknown target: got %v, want ErrInvalidTarget", err)
	}
}

func TestValidateApply(t *testing.T) {
	cases := []struct {
		name string
		req  ApplyDiscountRequest
		want error
	}{
		{"valid percentage", applyReq("all", "percentage", 25), nil},
		{"valid flat", applyReq("selected", "flat", 150), nil},
		{"percentage at limit", applyReq("all", "percentage", 100), nil},
		{"percentage over limit", applyReq("all", "percentage", 100.5), ErrPercentageTooLarge},
		{"zero percentage", applyReq("all", "percentage", 0), ErrZeroDiscount},
		{"zero flat", applyReq("all", "flat", 0), ErrZeroDiscount},
		{"negative discount", applyReq("all", "flat", -5), ErrInvalidDiscountValue},
		{"nan discount", applyReq("all", "flat", math.NaN()), ErrInvalidDiscountValue},
		{"infinite discount", applyReq("all", "percentage", math.Inf(1)), ErrInvalidDiscountValue},
		{"none is not applicable", applyReq("all", "none", 10), ErrInvalidDiscountType},
		{"unknown type", applyReq("all", "bogo", 10), ErrInvalidDiscountType},
		{"free without offer", applyReq("all", "free", 0), ErrFreeOfferIncomplete},
	}
	for _, tc := range cases {
		if _, err := ValidateApply(tc.req); err != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateApplyFreeOffer(t *testing.T) {
	req := applyReq("all", "free", 0)
	req.FreeOffer = models.FreeOffer{MinQuantityOfPurchase: 3, FreeItemQuantity: 1, FreeItemDescription: "Travel-size cleanser"}
	dt, err := ValidateApply(req)
	if err != nil {
		t.Fatalf("complete free offer rejected: %v", err)
	}
	if dt != models.DiscountTypeFree {
		t.Errorf("discount type = %s, want free", dt)
	}

	req.FreeOffer.FreeItemQuantity = 0
	if _, err := ValidateApply(req); err != ErrFreeOfferIncomplete {
		t.Errorf("free offer without grant quantity: got %v, want ErrFreeOfferIncomplete", err)
	}
	req.FreeOffer = models.FreeOffer{MinQuantityOfPurchase: 0, FreeItemQuantity: 1}
	if _, err := ValidateApply(req); err != ErrFreeOfferIncomplete {
		t.Errorf("free offer without threshold: got %v, want ErrFreeOfferIncomplete", err)
	}
}

func TestValidateApplyRejectsBadTargetFirst(t *testing.T) {
	req := applyReq("selected", "percentage", 10)
	req.Target.ProductIDs = nil
	if _, err := ValidateApply(req); err != ErrNoProductIDs {
		t.Errorf("got %v, want ErrNoProductIDs", err)
	}
}
