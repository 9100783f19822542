package config

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB     *sql.DB
	Port   string
	SMTP   SMTPConfig
	Hiring HiringConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// HiringConfig holds the tunable policy values for the hiring pipeline.
type HiringConfig struct {
	// PassScore is the single gate threshold used everywhere a score is
	// compared. Override with PASS_SCORE (e.g. 75 for stricter intakes).
	PassScore          float64
	QuestionCount      int
	AssessmentDuration time.Duration
	OTPTTL             time.Duration
	SlotHorizonDays    int
	RecruiterEmail     string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables into AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "8080"),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "hiring@zmediatechnologies.com"),
		},
		Hiring: HiringConfig{
			PassScore:          getEnvFloat("PASS_SCORE", 40),
			QuestionCount:      getEnvInt("ASSESSMENT_QUESTIONS", 10),
			AssessmentDuration: time.Duration(getEnvInt("ASSESSMENT_MINUTES", 10)) * time.Minute,
			OTPTTL:             time.Duration(getEnvInt("OTP_TTL_MINUTES", 10)) * time.Minute,
			SlotHorizonDays:    getEnvInt("SLOT_HORIZON_DAYS", 5),
			RecruiterEmail:     getEnv("RECRUITER_EMAIL", "owner@zmediatechnologies.com"),
		},
	}
}

// InitDB opens and verifies the database connection.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	dsn := getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=hiring sslmode=disable")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Set DATABASE_URL to a reachable Postgres instance, e.g.")
		log.Println("  export DATABASE_URL=\"host=localhost port=5432 user=postgres dbname=hiring sslmode=disable\"")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "hiring-system-secret-key" // Default for development
	}
	return []byte(secret)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}
