package config

import (
	"os"

	"github.com/nahom-lulseged/gursha-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens — read from env or fallback
var JWTSecret []byte

// DebugErrors controls whether raw store error text is echoed in responses.
var DebugErrors bool

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and process env into package state.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "gursha_super_secret_2024"))
	DebugErrors = getEnv("DEBUG_ERRORS", "") == "true"
}

// InitDB opens the store and migrates all models. Failure is fatal: the
// service cannot run without its store.
func InitDB() {
	path := getEnv("DB_PATH", "gursha.db")

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Food{},
		&models.Review{},
		&models.Order{},
		&models.Message{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	logrus.WithField("path", path).Info("database connected and migrated")
}
