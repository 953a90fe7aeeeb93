// Package pricing holds the price math shared by the cart, the order
// snapshot and the bulk discount engine. All functions are pure.
package pricing

import (
	"math"

	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
)

// DiscountedPrice computes the per-unit price after applying a discount.
// "free" offers never reduce the unit price; the benefit is bonus units.
// The result is rounded and clamped at zero.
func DiscountedPrice(sellingPrice float64, discountType models.DiscountType, discount float64) float64 {
	var price float64
	switch discountType {
	case models.DiscountTypePercentage:
		price = math.Round(sellingPrice - sellingPrice*discount/100)
	case models.DiscountTypeFlat:
		price = math.Round(sellingPrice - discount)
	default: // free, none
		price = sellingPrice
	}
	if price < 0 {
		price = 0
	}
	return price
}

// NormalizeItemPrices rewrites a cart item's discounted price from its
// selling price and discount settings. Only DiscountedPrice and DiscountType
// are written back, so repeated calls are idempotent.
func NormalizeItemPrices(item *models.CartItem) {
	if item.DiscountType == "" {
		item.DiscountType = models.DiscountTypeNone
	}
	item.DiscountedPrice = DiscountedPrice(item.SellingPrice, item.DiscountType, item.Discount)
}

// FreeQuantity computes the bonus units a cart line earns under a free
// offer: one grant of freeItemQuantity per full minPurchase multiple.
func FreeQuantity(quantity, minPurchase, freeItemQuantity int) int {
	if minPurchase <= 0 {
		return 0
	}
	return (quantity / minPurchase) * freeItemQuantity
}

// CalculateTotals recomputes every item's derived fields and the cart-level
// totals. GrandTotal equals SubTotal: discounts are already baked into each
// item's discounted price, so TotalDiscount is informational.
func CalculateTotals(cart *models.Cart) {
	var subTotal, totalDiscount float64
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.DiscountType == models.DiscountTypeFree {
			item.FreeQuantity = FreeQuantity(item.Quantity, item.MinPurchaseQuantity, item.FreeItemQuantity)
		} else {
			item.FreeQuantity = 0
		}
		item.TotalPrice = item.DiscountedPrice * float64(item.Quantity)
		subTotal += item.TotalPrice
		totalDiscount += (item.SellingPrice - item.DiscountedPrice) * float64(item.Quantity)
	}
	cart.SubTotal = subTotal
	cart.TotalDiscount = totalDiscount
	cart.GrandTotal = subTotal
}

// ApplyToPricing writes discount fields onto a product's pricing block.
// IsDiscounted is only set when the buyer actually gains something.
func ApplyToPricing(p *models.Pricing, discountType models.DiscountType, discount float64, offer models.FreeOffer) {
	p.DiscountType = discountType
	p.Discount = discount
	p.DiscountedPrice = DiscountedPrice(p.SellingPrice, discountType, discount)
	if discountType == models.DiscountTypeFree {
		p.FreeOffer = offer
		p.IsDiscounted = offer.FreeItemQuantity > 0
		return
	}
	p.FreeOffer = models.FreeOffer{}
	p.IsDiscounted = p.DiscountedPrice < p.SellingPrice
}

// ResetPricing clears all discount fields back to neutral defaults.
func ResetPricing(p *models.Pricing) {
	p.Discount = 0
	p.DiscountType = models.DiscountTypeNone
	p.DiscountedPrice = p.SellingPrice
	p.IsDiscounted = false
	p.FreeOffer = models.FreeOffer{}
}
