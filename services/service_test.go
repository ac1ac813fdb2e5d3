package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pledge-points-api/config"
	"pledge-points-api/models"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database and
// installs a small roster. The single-connection pool keeps every query on
// the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.PointSubmission{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		sqlDB.Close()
	})

	SetRoster(testRegistry(t))
	t.Cleanup(func() { SetRoster(nil) })

	return db
}

// seedSubmission inserts a record directly, bypassing the pipeline.
func seedSubmission(t *testing.T, db *gorm.DB, pledge string, points int64, status string, at time.Time) *models.PointSubmission {
	t.Helper()

	submission := &models.PointSubmission{
		Time:           at,
		Brother:        "warner",
		PointChange:    points,
		Pledge:         pledge,
		Comment:        "seeded",
		ApprovalStatus: status,
	}
	if err := db.Create(submission).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return submission
}
