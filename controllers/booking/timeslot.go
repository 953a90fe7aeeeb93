package bookingControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

type TimeSlotRequest struct {
	Label     string `json:"label" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func validSlotTimes(start, end string) bool {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return false
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return false
	}
	return e.After(s)
}

// POST /admin/timeslots
func CreateTimeSlot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TimeSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !validSlotTimes(req.StartTime, req.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Times must be HH:MM with end after start"})
			return
		}
		slot := models.ConsultationTimeSlot{
			Label:       req.Label,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			IsAvailable: true,
		}
		if err := db.Create(&slot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time slot"})
			return
		}
		c.JSON(http.StatusCreated, slot)
	}
}

// GET /bookings/timeslots
func GetTimeSlots(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slots []models.ConsultationTimeSlot
		q := db.Order("start_time")
		if c.Query("available") == "true" {
			q = q.Where("is_available = ?", true)
		}
		if err := q.Find(&slots).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time slots"})
			return
		}
		c.JSON(http.StatusOK, slots)
	}
}

// PUT /admin/timeslots/:id
func UpdateTimeSlot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slot models.ConsultationTimeSlot
		if err := db.First(&slot, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time slot not found"})
			return
		}
		var req struct {
			Label       *string `json:"label"`
			StartTime   *string `json:"start_time"`
			EndTime     *string `json:"end_time"`
			IsAvailable *bool   `json:"is_available"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Label != nil {
			slot.Label = *req.Label
		}
		if req.StartTime != nil {
			slot.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			slot.EndTime = *req.EndTime
		}
		if !validSlotTimes(slot.StartTime, slot.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Times must be HH:MM with end after start"})
			return
		}
		if req.IsAvailable != nil {
			slot.IsAvailable = *req.IsAvailable
		}
		if err := db.Save(&slot).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update time slot"})
			return
		}
		c.JSON(http.StatusOK, slot)
	}
}

// DELETE /admin/timeslots/:id
func DeleteTimeSlot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var active int64
		if err := db.Model(&models.ConsultationBooking{}).
			Where("time_slot_id = ? AND status <> ?", id, models.BookingStatusCancelled).
			Count(&active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time slot"})
			return
		}
		if active > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Time slot has active bookings"})
			return
		}
		result := db.Delete(&models.ConsultationTimeSlot{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time slot"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time slot not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Time slot deleted"})
	}
}
