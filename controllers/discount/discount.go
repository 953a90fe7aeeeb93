package discountControllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

// Target selects the inventory rows a bulk pricing change applies to.
type Target struct {
	Type        string `json:"type"` // all | selected | category
	ProductIDs  []uint `json:"product_ids"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

type ApplyDiscountRequest struct {
	Target       Target           `json:"target"`
	DiscountType string           `json:"discount_type" binding:"required"`
	Discount     float64          `json:"discount"`
	FreeOffer    models.FreeOffer `json:"free_offer"`
}

type RemoveDiscountRequest struct {
	Target Target `json:"target"`
}

var (
	ErrInvalidTarget        = errors.New("target type must be all, selected or category")
	ErrNoProductIDs         = errors.New("selected target requires at least one product id")
	ErrNoCategory           = errors.New("category target requires a category name")
	ErrInvalidDiscountType  = errors.New("discount type must be percentage, flat or free")
	ErrInvalidDiscountValue = errors.New("discount must be a finite, non-negative number")
	ErrZeroDiscount         = errors.New("discount must be greater than zero")
	ErrPercentageTooLarge   = errors.New("Percentage discount cannot exceed 100%")
	ErrFreeOfferIncomplete  = errors.New("free discount requires a minimum purchase quantity and a free item quantity")
)

// ValidateTarget checks the selector before any row is touched.
func ValidateTarget(t Target) error {
	switch t.Type {
	case "all":
		return nil
	case "selected":
		if len(t.ProductIDs) == 0 {
			return ErrNoProductIDs
		}
		return nil
	case "category":
		if t.Category == "" {
			return ErrNoCategory
		}
		return nil
	default:
		return ErrInvalidTarget
	}
}

// ValidateApply checks discount-type-specific rules. Applying "none" is
// never valid; removal is its own operation.
func ValidateApply(req ApplyDiscountRequest) (models.DiscountType, error) {
	if err := ValidateTarget(req.Target); err != nil {
		return "", err
	}
	if math.IsNaN(req.Discount) || math.IsInf(req.Discount, 0) || req.Discount < 0 {
		return "", ErrInvalidDiscountValue
	}
	switch models.DiscountType(req.DiscountType) {
	case models.DiscountTypePercentage:
		if req.Discount <= 0 {
			return "", ErrZeroDiscount
		}
		if req.Discount > 100 {
			return "", ErrPercentageTooLarge
		}
		return models.DiscountTypePercentage, nil
	case models.DiscountTypeFlat:
		if req.Discount <= 0 {
			return "", ErrZeroDiscount
		}
		return models.DiscountTypeFlat, nil
	case models.DiscountTypeFree:
		if req.FreeOffer.MinQuantityOfPurchase <= 0 || req.FreeOffer.FreeItemQuantity <= 0 {
			return "", ErrFreeOfferIncomplete
		}
		return models.DiscountTypeFree, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func targetQuery(db *gorm.DB, t Target) *gorm.DB {
	q := db.Model(&models.Inventory{})
	switch t.Type {
	case "selected":
		q = q.Where("id IN ?", t.ProductIDs)
	case "category":
		q = q.Where("category = ?", t.Category)
		if t.SubCategory != "" {
			q = q.Where("sub_category = ?", t.SubCategory)
		}
	}
	return q
}

// POST /admin/discounts/apply
func ApplyDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		discountType, err := ValidateApply(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var matched int64
		if err := targetQuery(db, req.Target).Count(&matched).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query inventory"})
			return
		}
		if matched == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No products matched the selected target"})
			return
		}

		// Same price rules as the cart path, expressed as one bulk update.
		updates := map[string]interface{}{
			"pricing_discount":      req.Discount,
			"pricing_discount_type": discountType,
		}
		switch discountType {
		case models.DiscountTypePercentage:
			updates["pricing_discounted_price"] = gorm.Expr(
				"GREATEST(ROUND(pricing_selling_price - pricing_selling_price * ? / 100), 0)", req.Discount)
			updates["pricing_is_discounted"] = gorm.Expr(
				"GREATEST(ROUND(pricing_selling_price - pricing_selling_price * ? / 100), 0) < pricing_selling_price", req.Discount)
		case models.DiscountTypeFlat:
			updates["pricing_discounted_price"] = gorm.Expr(
				"GREATEST(ROUND(pricing_selling_price - ?), 0)", req.Discount)
			updates["pricing_is_discounted"] = gorm.Expr(
				"GREATEST(ROUND(pricing_selling_price - ?), 0) < pricing_selling_price", req.Discount)
		case models.DiscountTypeFree:
			updates["pricing_discounted_price"] = gorm.Expr("pricing_selling_price")
			updates["pricing_is_discounted"] = req.FreeOffer.FreeItemQuantity > 0
		}
		if discountType == models.DiscountTypeFree {
			updates["pricing_free_offer_min_quantity_of_purchase"] = req.FreeOffer.MinQuantityOfPurchase
			updates["pricing_free_offer_free_item_quantity"] = req.FreeOffer.FreeItemQuantity
			updates["pricing_free_offer_free_item_description"] = req.FreeOffer.FreeItemDescription
		} else {
			updates["pricing_free_offer_min_quantity_of_purchase"] = 0
			updates["pricing_free_offer_free_item_quantity"] = 0
			updates["pricing_free_offer_free_item_description"] = ""
		}

		result := targetQuery(db, req.Target).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply discount"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":        "Discount applied",
			"matched_count":  matched,
			"modified_count": result.RowsAffected,
		})
	}
}

// POST /admin/discounts/remove
func RemoveDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RemoveDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := ValidateTarget(req.Target); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var matched int64
		if err := targetQuery(db, req.Target).Count(&matched).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query inventory"})
			return
		}
		if matched == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No products matched the selected target"})
			return
		}

		result := targetQuery(db, req.Target).Updates(map[string]interface{}{
			"pricing_discount":                            0,
			"pricing_discount_type":                       models.DiscountTypeNone,
			"pricing_discounted_price":                    gorm.Expr("pricing_selling_price"),
			"pricing_is_discounted":                       false,
			"pricing_free_offer_min_quantity_of_purchase": 0,
			"pricing_free_offer_free_item_quantity":       0,
			"pricing_free_offer_free_item_description":    "",
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove discount"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":        "Discount removed",
			"matched_count":  matched,
			"modified_count": result.RowsAffected,
		})
	}
}
