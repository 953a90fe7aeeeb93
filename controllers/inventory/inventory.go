package inventoryControllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/pricing"
	"gorm.io/gorm"
)

// saveImage writes an uploaded file under the configured uploads root and
// returns the public path nginx serves it from.
func saveImage(c *gin.Context, file *multipart.FileHeader, cfg config.App, subdir string) (string, error) {
	filename := strings.ReplaceAll(file.Filename, " ", "_")
	saveDir := filepath.Join(cfg.UploadsDir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// POST /admin/inventory
func CreateInventory(db *gorm.DB, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		sellingPriceStr := c.PostForm("selling_price")
		if name == "" || sellingPriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and selling_price are required"})
			return
		}
		sellingPrice, err := strconv.ParseFloat(sellingPriceStr, 64)
		if err != nil || sellingPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selling_price"})
			return
		}

		var costPrice float64
		if s := c.PostForm("cost_price"); s != "" {
			if costPrice, err = strconv.ParseFloat(s, 64); err != nil || costPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost_price"})
				return
			}
		}
		var stock int
		if s := c.PostForm("stock"); s != "" {
			if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveImage(c, file, cfg, "products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		item := models.Inventory{
			Name:        name,
			Description: c.PostForm("description"),
			Image:       imageURL,
			Category:    c.PostForm("category"),
			SubCategory: c.PostForm("sub_category"),
			Stock:       stock,
			Pricing: models.Pricing{
				CostPrice:       costPrice,
				SellingPrice:    sellingPrice,
				DiscountType:    models.DiscountTypeNone,
				DiscountedPrice: sellingPrice,
			},
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /inventory
func GetAllInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Inventory{})
		if category := c.Query("category"); category != "" {
			q = q.Where("category = ?", category)
		}
		if sub := c.Query("sub_category"); sub != "" {
			q = q.Where("sub_category = ?", sub)
		}
		if search := c.Query("search"); search != "" {
			q = q.Where("name ILIKE ?", "%"+search+"%")
		}
		if c.Query("discounted") == "true" {
			q = q.Where("pricing_is_discounted = ?", true)
		}
		var items []models.Inventory
		if err := q.Order("name").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /inventory/:id
func GetInventoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Inventory
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /admin/inventory/:id
func UpdateInventory(db *gorm.DB, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Inventory
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			item.Name = name
		}
		if desc, ok := c.GetPostForm("description"); ok {
			item.Description = desc
		}
		if category, ok := c.GetPostForm("category"); ok {
			item.Category = category
		}
		if sub, ok := c.GetPostForm("sub_category"); ok {
			item.SubCategory = sub
		}
		if s := c.PostForm("stock"); s != "" {
			stock, err := strconv.Atoi(s)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			item.Stock = stock
		}
		if s := c.PostForm("cost_price"); s != "" {
			costPrice, err := strconv.ParseFloat(s, 64)
			if err != nil || costPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost_price"})
				return
			}
			item.Pricing.CostPrice = costPrice
		}
		if s := c.PostForm("selling_price"); s != "" {
			sellingPrice, err := strconv.ParseFloat(s, 64)
			if err != nil || sellingPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selling_price"})
				return
			}
			item.Pricing.SellingPrice = sellingPrice
			// Keep the derived price in step with the active discount.
			if item.Pricing.DiscountType == models.DiscountTypeNone {
				item.Pricing.DiscountedPrice = sellingPrice
			} else {
				pricing.ApplyToPricing(&item.Pricing, item.Pricing.DiscountType,
					item.Pricing.Discount, item.Pricing.FreeOffer)
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveImage(c, file, cfg, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			item.Image = imageURL
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /admin/inventory/:id
func DeleteInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Inventory{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
	}
}
