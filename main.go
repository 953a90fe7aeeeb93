package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	bookingControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/booking"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestSession{},
		&models.EmailOTP{},
		&models.Admin{},
		&models.Category{},
		&models.SubCategory{},
		&models.Inventory{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Counter{},
		&models.ConsultationPlan{},
		&models.ConsultationTimeSlot{},
		&models.ConsultationBooking{},
		&models.Notification{},
		&models.PaymentMethod{},
		&models.ReturnRequest{},
		&models.ReturnImage{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	mail := mailer.New(cfg.MailAPIKey, cfg.MailFrom, cfg.MailBaseURL)
	if !mail.Enabled() {
		log.Println("⚠️ MAIL_API_KEY not set; outbound email is disabled")
	}

	r := gin.Default()
	r.MaxMultipartMemory = 1 << 30 // 1GB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, db, cfg, mail)

	// Cancel unpaid bookings past their payment window
	go runBookingSweep(db, time.Duration(cfg.SweepIntervalMin)*time.Minute)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.App) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// runBookingSweep invokes the expiry sweep on a fixed interval. The sweep
// itself is idempotent, so overlap with the manual admin trigger is safe.
func runBookingSweep(db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		expired, err := bookingControllers.ExpireOverdueBookings(db, time.Now())
		if err != nil {
			log.Printf("❌ Booking expiry sweep failed: %v", err)
			continue
		}
		if expired > 0 {
			log.Printf("⏳ Booking expiry sweep cancelled %d overdue booking(s)", expired)
		}
	}
}
