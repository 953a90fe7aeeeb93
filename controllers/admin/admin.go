package adminController

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/auth"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/register
// The first registered account becomes an approved super-admin; every
// later account waits for super-admin approval before it can log in.
func RegisterAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		admin := models.Admin{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.AdminRoleAdmin,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Admin{}).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				admin.Role = models.AdminRoleSuper
				admin.Approved = true
			}
			return tx.Create(&admin).Error
		})
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An admin with this email already exists"})
			return
		}

		message := "Registration received; awaiting approval"
		if admin.Approved {
			message = "Super-admin account created"
		}
		c.JSON(http.StatusCreated, gin.H{"message": message, "admin": admin})
	}
}

// POST /admin/login
func LoginAdmin(db *gorm.DB, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var admin models.Admin
		if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is awaiting approval"})
			return
		}

		token, err := auth.GenerateAdminToken(admin.ID, string(admin.Role), cfg.JWTSecret,
			time.Duration(cfg.JWTExpireHrs)*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
	}
}

// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Order("created_at").Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// GET /admin/admins/pending
func GetPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Where("approved = ?", false).Order("created_at").Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// PUT /admin/admins/:id/approve
func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Admin{}).Where("id = ?", c.Param("id")).Update("approved", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

// DELETE /admin/admins/:id — rejects a pending registration or removes
// an existing admin. Super-admins cannot be removed this way.
func RemoveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admin models.Admin
		if err := db.First(&admin, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		if admin.Role == models.AdminRoleSuper {
			c.JSON(http.StatusForbidden, gin.H{"error": "Super-admin accounts cannot be removed"})
			return
		}
		if err := db.Delete(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove admin"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Admin removed"})
	}
}
