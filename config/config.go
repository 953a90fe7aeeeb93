package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"ultimatebliss"`

	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HRS" default:"72"`

	// Mail
	MailAPIKey  string `envconfig:"MAIL_API_KEY"`
	MailFrom    string `envconfig:"MAIL_FROM" default:"no-reply@ultimatebliss.shop"`
	ContactTo   string `envconfig:"CONTACT_TO" default:"support@ultimatebliss.shop"`
	MailBaseURL string `envconfig:"MAIL_BASE_URL" default:"https://api.resend.com"`

	// Server
	Port       string `envconfig:"PORT" default:"8080"`
	UploadsDir string `envconfig:"UPLOADS_DIR" default:"/var/www/ultimatebliss/uploads"`
	PublicURL  string `envconfig:"PUBLIC_URL" default:"https://api.ultimatebliss.shop"`

	// Booking sweep interval in minutes
	SweepIntervalMin int `envconfig:"SWEEP_INTERVAL_MIN" default:"10"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
