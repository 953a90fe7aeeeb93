package contactControllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	notificationControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"gorm.io/gorm"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /contact — relays the message to the support inbox and drops a
// notification for the admin dashboard. Mail failure is non-fatal.
func SubmitContactForm(db *gorm.DB, mail *mailer.Client, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := notificationControllers.NotifyAdmins(db, "Contact form message",
			fmt.Sprintf("%s (%s): %s", req.Name, req.Email, req.Message),
			"contact", ""); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record message"})
			return
		}

		if err := mail.Send(c.Request.Context(), cfg.ContactTo,
			fmt.Sprintf("Contact form: %s", req.Name),
			fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>", req.Name, req.Email, req.Message)); err != nil {
			log.Printf("contact relay to %s failed: %v", cfg.ContactTo, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Thanks for reaching out; we'll get back to you soon"})
	}
}
