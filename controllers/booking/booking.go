package bookingControllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	notificationControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

const slotTakenMessage = "Time slot already booked for this date"

type CreateBookingRequest struct {
	ConsultationPlanID uint   `json:"consultation_plan_id" binding:"required"`
	TimeSlotID         uint   `json:"time_slot_id" binding:"required"`
	Date               string `json:"date" binding:"required"`
	PaymentMethod      string `json:"payment_method"`
}

type UpdateBookingStatusRequest struct {
	Status            string `json:"status"`
	TransactionStatus string `json:"transaction_status"`
}

// bookingView enriches a booking with its plan and slot. There are no
// joins here; foreign keys are matched in memory after separate lookups.
type bookingView struct {
	models.ConsultationBooking
	Plan     *models.ConsultationPlan     `json:"plan,omitempty"`
	TimeSlot *models.ConsultationTimeSlot `json:"time_slot,omitempty"`
}

func enrichBookings(db *gorm.DB, bookings []models.ConsultationBooking) ([]bookingView, error) {
	var plans []models.ConsultationPlan
	if err := db.Find(&plans).Error; err != nil {
		return nil, err
	}
	var slots []models.ConsultationTimeSlot
	if err := db.Find(&slots).Error; err != nil {
		return nil, err
	}
	planByID := make(map[uint]*models.ConsultationPlan, len(plans))
	for i := range plans {
		planByID[plans[i].ID] = &plans[i]
	}
	slotByID := make(map[uint]*models.ConsultationTimeSlot, len(slots))
	for i := range slots {
		slotByID[slots[i].ID] = &slots[i]
	}
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			ConsultationBooking: b,
			Plan:                planByID[b.ConsultationPlanID],
			TimeSlot:            slotByID[b.TimeSlotID],
		})
	}
	return views, nil
}

func setSlotAvailability(tx *gorm.DB, slotID uint, available bool) error {
	return tx.Model(&models.ConsultationTimeSlot{}).
		Where("id = ?", slotID).
		Update("is_available", available).Error
}

// POST /user/bookings
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
			return
		}

		var plan models.ConsultationPlan
		if err := db.First(&plan, req.ConsultationPlanID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation plan not found"})
			return
		}
		var slot models.ConsultationTimeSlot
		if err := db.First(&slot, req.TimeSlotID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time slot not found"})
			return
		}

		booking := models.ConsultationBooking{
			UserID:             userID,
			ConsultationPlanID: plan.ID,
			TimeSlotID:         slot.ID,
			Date:               req.Date,
			Status:             models.BookingStatusPending,
			TransactionStatus:  models.BookingTransactionPending,
			TransactionID:      uuid.NewString(),
			PaymentMethod:      req.PaymentMethod,
			PaymentExpiresAt:   time.Now().Add(PaymentWindow),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var active int64
			if err := tx.Model(&models.ConsultationBooking{}).
				Where("time_slot_id = ? AND date = ? AND status <> ?", slot.ID, req.Date, models.BookingStatusCancelled).
				Count(&active).Error; err != nil {
				return err
			}
			if active > 0 {
				return gorm.ErrDuplicatedKey
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}
			return setSlotAvailability(tx, slot.ID, false)
		})
		if err != nil {
			// The partial unique index backstops the check above when
			// two requests race past it.
			if err == gorm.ErrDuplicatedKey || strings.Contains(err.Error(), "duplicate key") {
				c.JSON(http.StatusConflict, gin.H{"error": slotTakenMessage})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
			return
		}

		meta := fmt.Sprintf(`{"booking_id":%d}`, booking.ID)
		if err := notificationControllers.Notify(db, userID, "Booking received",
			fmt.Sprintf("Your consultation on %s (%s) is reserved. Complete payment within 2 hours to confirm it.", req.Date, slot.Label),
			"booking", meta); err != nil {
			log.Printf("booking %d: user notification failed: %v", booking.ID, err)
		}
		if err := notificationControllers.NotifyAdmins(db, "New consultation booking",
			fmt.Sprintf("Booking #%d for %s on %s is awaiting payment.", booking.ID, plan.Name, req.Date),
			"booking", meta); err != nil {
			log.Printf("booking %d: admin notification failed: %v", booking.ID, err)
		}

		c.JSON(http.StatusCreated, booking)
	}
}

// GET /user/bookings
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var bookings []models.ConsultationBooking
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		views, err := enrichBookings(db, bookings)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /admin/bookings
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.ConsultationBooking
		q := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", strings.ToLower(status))
		}
		if date := c.Query("date"); date != "" {
			q = q.Where("date = ?", date)
		}
		if err := q.Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		views, err := enrichBookings(db, bookings)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /admin/bookings/:id/status
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateBookingStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Status == "" && req.TransactionStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No status change requested"})
			return
		}

		var change BookingChange
		if req.Status != "" {
			status, err := mapBookingStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			change.Status = &status
		}
		if req.TransactionStatus != "" {
			txn, err := mapBookingTransactionStatus(req.TransactionStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			change.TransactionStatus = &txn
		}

		var booking models.ConsultationBooking
		if err := db.First(&booking, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if err := ApplyBookingChange(&booking, change); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}
		if booking.Status == models.BookingStatusCancelled {
			if err := setSlotAvailability(db, booking.TimeSlotID, true); err != nil {
				log.Printf("booking %d: freeing slot %d failed: %v", booking.ID, booking.TimeSlotID, err)
			}
		}

		meta := fmt.Sprintf(`{"booking_id":%d}`, booking.ID)
		if err := notificationControllers.Notify(db, booking.UserID, "Booking update",
			fmt.Sprintf("Your booking for %s is now %s.", booking.Date, booking.Status),
			"booking", meta); err != nil {
			log.Printf("booking %d: user notification failed: %v", booking.ID, err)
		}

		c.JSON(http.StatusOK, booking)
	}
}

// PUT /user/bookings/:id/cancel — owners cancel their own bookings;
// admin routes reuse it without the ownership filter.
func CancelBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.ConsultationBooking
		q := db.Where("id = ?", c.Param("id"))
		role := c.GetString("role")
		if role != "admin" && role != "super-admin" {
			userID := c.GetString("user_id")
			if userID == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			q = q.Where("user_id = ?", userID)
		}
		if err := q.First(&booking).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if err := CancelBooking(&booking); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := db.Save(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
			return
		}
		if err := setSlotAvailability(db, booking.TimeSlotID, true); err != nil {
			log.Printf("booking %d: freeing slot %d failed: %v", booking.ID, booking.TimeSlotID, err)
		}

		if err := notificationControllers.NotifyAdmins(db, "Booking cancelled",
			fmt.Sprintf("Booking #%d for %s was cancelled.", booking.ID, booking.Date),
			"booking", fmt.Sprintf(`{"booking_id":%d}`, booking.ID)); err != nil {
			log.Printf("booking %d: admin notification failed: %v", booking.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": booking})
	}
}

// ExpireOverdueBookings cancels pending bookings whose payment window
// has lapsed and frees their slots. The status filter makes re-running
// the sweep over the same rows a no-op, so overlapping invocations
// cannot double-notify.
func ExpireOverdueBookings(db *gorm.DB, now time.Time) (int, error) {
	var due []models.ConsultationBooking
	if err := db.Where("status = ? AND transaction_status = ? AND payment_expires_at < ?",
		models.BookingStatusPending, models.BookingTransactionPending, now).
		Find(&due).Error; err != nil {
		return 0, err
	}

	expired := 0
	for i := range due {
		b := &due[i]
		if !ExpireDue(b, now) {
			continue
		}
		result := db.Model(&models.ConsultationBooking{}).
			Where("id = ? AND status = ?", b.ID, models.BookingStatusPending).
			Updates(map[string]interface{}{
				"status":             models.BookingStatusCancelled,
				"transaction_status": models.BookingTransactionFailed,
			})
		if result.Error != nil {
			log.Printf("booking %d: expiry update failed: %v", b.ID, result.Error)
			continue
		}
		if result.RowsAffected == 0 {
			// Another sweep or a payment got there first.
			continue
		}
		expired++
		if err := setSlotAvailability(db, b.TimeSlotID, true); err != nil {
			log.Printf("booking %d: freeing slot %d failed: %v", b.ID, b.TimeSlotID, err)
		}
		if err := notificationControllers.Notify(db, b.UserID, "Booking expired",
			fmt.Sprintf("Your booking for %s was cancelled because payment was not completed in time.", b.Date),
			"booking", fmt.Sprintf(`{"booking_id":%d}`, b.ID)); err != nil {
			log.Printf("booking %d: user notification failed: %v", b.ID, err)
		}
	}
	return expired, nil
}

// POST /admin/bookings/expire — manual trigger for the same sweep the
// background loop runs.
func ExpireOverdueBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		expired, err := ExpireOverdueBookings(db, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to expire bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"expired_count": expired})
	}
}
