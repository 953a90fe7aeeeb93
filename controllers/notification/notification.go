package notificationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

// Notify records a notification for a single user. Callers treat failures as
// best-effort: they log and move on, the triggering mutation stands.
func Notify(db *gorm.DB, userID, title, message, ntype, metadata string) error {
	if userID == "" {
		return nil
	}
	n := models.Notification{
		UserID:        userID,
		Title:         title,
		Message:       message,
		Type:          ntype,
		RecipientRole: "customer",
		Metadata:      metadata,
	}
	return db.Create(&n).Error
}

// NotifyAdmins fans a notification out to every admin account. The rows are
// written in one batch, but every admin still receives their own record.
func NotifyAdmins(db *gorm.DB, title, message, ntype, metadata string) error {
	var admins []models.Admin
	if err := db.Find(&admins).Error; err != nil {
		return err
	}
	if len(admins) == 0 {
		return nil
	}
	rows := make([]models.Notification, 0, len(admins))
	for _, a := range admins {
		rows = append(rows, models.Notification{
			AdminID:       a.ID,
			Title:         title,
			Message:       message,
			Type:          ntype,
			RecipientRole: "admin",
			Metadata:      metadata,
		})
	}
	return db.CreateInBatches(rows, 100).Error
}

// GET /user/notifications
func GetUserNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var notifications []models.Notification
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// GET /admin/notifications
func GetAdminNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.Notification
		if err := db.Where("recipient_role = ?", "admin").
			Order("created_at DESC").Limit(200).Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// PUT /user/notifications/:id/read
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}
