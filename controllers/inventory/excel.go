package inventoryControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /admin/inventory/import
// Columns: ID, Name, Description, Category, SubCategory, Stock,
// CostPrice, SellingPrice, Image. Discount fields are owned by the
// discount engine and never imported.
func ImportInventoryFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}
		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			category := get(3)
			subCategory := get(4)
			stock, _ := strconv.Atoi(get(5))
			costPrice, _ := strconv.ParseFloat(get(6), 64)
			sellingPrice, err := strconv.ParseFloat(get(7), 64)
			image := get(8)

			if name == "" || err != nil || sellingPrice < 0 {
				skippedCount++
				continue
			}

			if idStr != "" {
				if id, convErr := strconv.Atoi(idStr); convErr == nil {
					var existing models.Inventory
					if db.First(&existing, id).Error == nil {
						existing.Name = name
						existing.Description = description
						existing.Category = category
						existing.SubCategory = subCategory
						existing.Stock = stock
						existing.Pricing.CostPrice = costPrice
						existing.Pricing.SellingPrice = sellingPrice
						if existing.Pricing.DiscountType == models.DiscountTypeNone {
							existing.Pricing.DiscountedPrice = sellingPrice
						}
						if image != "" {
							existing.Image = image
						}
						if db.Save(&existing).Error == nil {
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			item := models.Inventory{
				Name:        name,
				Description: description,
				Category:    category,
				SubCategory: subCategory,
				Stock:       stock,
				Image:       image,
				Pricing: models.Pricing{
					CostPrice:       costPrice,
					SellingPrice:    sellingPrice,
					DiscountType:    models.DiscountTypeNone,
					DiscountedPrice: sellingPrice,
				},
			}
			if db.Create(&item).Error == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

// GET /admin/inventory/export
func ExportInventoryToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Inventory
		if err := db.Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inventory")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Category", "SubCategory", "Stock",
			"CostPrice", "SellingPrice", "Image",
			"DiscountType", "Discount", "DiscountedPrice", "IsDiscounted",
			"CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Description)
			row.AddCell().SetValue(item.Category)
			row.AddCell().SetValue(item.SubCategory)
			row.AddCell().SetValue(item.Stock)
			row.AddCell().SetValue(item.Pricing.CostPrice)
			row.AddCell().SetValue(item.Pricing.SellingPrice)
			row.AddCell().SetValue(item.Image)
			row.AddCell().SetValue(string(item.Pricing.DiscountType))
			row.AddCell().SetValue(item.Pricing.Discount)
			row.AddCell().SetValue(item.Pricing.DiscountedPrice)
			row.AddCell().SetValue(item.Pricing.IsDiscounted)
			row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(item.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
