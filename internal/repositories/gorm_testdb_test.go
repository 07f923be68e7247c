package repositories_test

import (
	"testing"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens the shared in-memory SQLite database and migrates the
// models the repository tests touch. The database is shared across the test
// binary, so every test uses freshly generated IDs.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
		&models.BlogPost{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}
	return db
}

func newID() string {
	return uuid.New().String()
}
