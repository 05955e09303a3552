package db

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sujalbistaa/blogapi/internal/models"
)

const defaultURL = "sqlite://blog.db"

// Init initializes and returns a GORM database connection.
// It reads the DATABASE_URL environment variable.
func Init() (*gorm.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")

	// Default to local SQLite if no URL is provided
	if dbURL == "" {
		dbURL = defaultURL
		log.Printf("DATABASE_URL not set, defaulting to '%s'", defaultURL)
	}

	db, err := Open(dbURL, logLevel(os.Getenv("DB_LOG_LEVEL")))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(envInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(envInt("DB_MAX_OPEN_CONNS", 100))

	log.Println("Database connection established.")
	return db, nil
}

// Open connects to the database named by dbURL. Supported prefixes are
// sqlite:// and postgres:// (or postgresql://).
func Open(dbURL string, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := Dialector(dbURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Dialector picks the gorm driver for dbURL.
func Dialector(dbURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		// pgx understands the URL form directly
		log.Println("Connecting to PostgreSQL database...")
		return postgres.Open(dbURL), nil
	case strings.HasPrefix(dbURL, "sqlite://"):
		dsn := strings.TrimPrefix(dbURL, "sqlite://")
		if dsn == "" {
			return nil, fmt.Errorf("invalid DATABASE_URL %q: empty sqlite path", dbURL)
		}
		log.Println("Connecting to SQLite database at", dsn)
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("invalid DATABASE_URL prefix: must start with 'postgres://', 'postgresql://' or 'sqlite://'")
	}
}

// Migrate creates or updates the posts and comments tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Post{}, &models.Comment{})
}

func logLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent // Be quiet by default
	}
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
