package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hqd-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is everything the API reads from the environment
type Config struct {
	Port              string
	GinMode           string
	DBPath            string
	JWTSecret         []byte
	AdminEmail        string
	AdminPasswordHash string
	CORSOrigins       []string
	LeadRatePerMinute int
	EmailEnabled      bool
	EmailTo           string
	EmailFrom         string
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	LogLevel          string
	BackendURL        string
	WhatsAppNumber    string
}

// MinJWTSecretLen is the shortest JWT_SECRET accepted alongside an admin account
const MinJWTSecretLen = 32

// Load reads .env (when present) and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() (*Config, error) {
	rate, err := strconv.Atoi(getEnv("LEAD_RATE_PER_MINUTE", "5"))
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("config: LEAD_RATE_PER_MINUTE must be a positive integer, got %q", os.Getenv("LEAD_RATE_PER_MINUTE"))
	}
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           os.Getenv("GIN_MODE"),
		DBPath:            getEnv("DB_PATH", "hqd.db"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		LeadRatePerMinute: rate,
		EmailEnabled:      strings.EqualFold(os.Getenv("EMAIL_ENABLED"), "true"),
		EmailTo:           getEnv("EMAIL_TO", "Rupesh@Headquartersofdrinks.co.in"),
		EmailFrom:         getEnv("EMAIL_FROM", "leads@headquartersofdrinks.co.in"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		BackendURL:        os.Getenv("BACKEND_URL"),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", "919540343437"),
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPasswordHash == "") {
		return nil, errors.New("config: ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set together")
	}
	if cfg.EmailEnabled && cfg.SMTPHost == "" {
		return nil, errors.New("config: EMAIL_ENABLED needs SMTP_HOST")
	}
	switch {
	case cfg.AdminEmail != "" && len(cfg.JWTSecret) < MinJWTSecretLen:
		return nil, fmt.Errorf("config: JWT_SECRET of at least %d bytes is required when ADMIN_EMAIL is set", MinJWTSecretLen)
	case len(cfg.JWTSecret) == 0:
		// no admin to log in, so tokens only need to outlive this process
		secret := make([]byte, MinJWTSecretLen)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("config: generate JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// InitDB opens the sqlite database at path and migrates the lead tables.
// Use ":memory:" in tests.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("config: open database: %w", err)
	}
	// sqlite has a single writer, and each ":memory:" connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("config: database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Staff{},
		&models.Lead{},
		&models.LeadStatusHistory{},
	)
	if err != nil {
		return nil, fmt.Errorf("config: migrate database: %w", err)
	}
	return db, nil
}

// SeedAdmin makes sure the configured admin account exists and carries the
// configured password hash. It does nothing when no admin is configured.
func SeedAdmin(db *gorm.DB, email, passwordHash string) error {
	if email == "" {
		return nil
	}
	var staff models.Staff
	err := db.Where("email = ?", email).
		Attrs(models.Staff{Name: "Admin", Role: models.RoleAdmin}).
		FirstOrInit(&staff).Error
	if err != nil {
		return fmt.Errorf("config: seed admin: %w", err)
	}
	staff.Email = email
	staff.PasswordHash = passwordHash
	staff.Role = models.RoleAdmin
	if err := db.Save(&staff).Error; err != nil {
		return fmt.Errorf("config: seed admin: %w", err)
	}
	return nil
}
