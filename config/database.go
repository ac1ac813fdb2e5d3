package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pledge-points-api/models"
)

var DB *gorm.DB

func InitDB() {
	var err error

	// Configure GORM
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	config := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	// Connect to database
	switch strings.ToLower(os.Getenv("DB_DRIVER")) {
	case "", "sqlite":
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "points.db"
		}
		DB, err = gorm.Open(sqlite.Open(dbPath), config)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_DATABASE"),
		)
		DB, err = gorm.Open(mysql.Open(dsn), config)
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", os.Getenv("DB_DRIVER"))
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Keep the schema current. The points table matches the layout the old
	// bot used, so an existing database file keeps working.
	if err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.PointSubmission{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected successfully")
}
