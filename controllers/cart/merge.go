package cartControllers

import (
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/pricing"
	"gorm.io/gorm"
)

// MergeLineItems folds src lines into dst, summing quantities for lines
// sharing a product and recomputing the per-line totals.
func MergeLineItems(dst, src []models.CartItem) []models.CartItem {
	for _, s := range src {
		merged := false
		for i := range dst {
			if dst[i].ProductID == s.ProductID {
				dst[i].Quantity += s.Quantity
				pricing.NormalizeItemPrices(&dst[i])
				dst[i].TotalPrice = dst[i].DiscountedPrice * float64(dst[i].Quantity)
				merged = true
				break
			}
		}
		if !merged {
			dst = append(dst, s)
		}
	}
	return dst
}

// MergeSessionCarts reassigns the session's guest carts to the newly
// authenticated user. If the user then owns more than one cart, the oldest
// becomes primary and the rest are folded into it and deleted.
func MergeSessionCarts(db *gorm.DB, sessionID, userID string) error {
	if sessionID == "" || userID == "" {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Cart{}).Where("session_id = ?", sessionID).
			Updates(map[string]interface{}{"session_id": "", "user_id": userID}).Error; err != nil {
			return err
		}

		var carts []models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).
			Order("cart_id ASC").Find(&carts).Error; err != nil {
			return err
		}
		if len(carts) <= 1 {
			return nil
		}

		primary := &carts[0]
		for _, extra := range carts[1:] {
			primary.Items = MergeLineItems(primary.Items, extra.Items)
		}

		// Retarget surviving lines before the merged-from carts (and their
		// leftover duplicate lines) cascade away.
		for i := range primary.Items {
			primary.Items[i].CartID = primary.CartID
			if err := tx.Save(&primary.Items[i]).Error; err != nil {
				return err
			}
		}
		for _, extra := range carts[1:] {
			if err := tx.Delete(&models.Cart{}, "cart_id = ?", extra.CartID).Error; err != nil {
				return err
			}
		}

		pricing.CalculateTotals(primary)
		return tx.Model(&models.Cart{}).Where("cart_id = ?", primary.CartID).
			Updates(map[string]interface{}{
				"sub_total":      primary.SubTotal,
				"total_discount": primary.TotalDiscount,
				"grand_total":    primary.GrandTotal,
			}).Error
	})
}
