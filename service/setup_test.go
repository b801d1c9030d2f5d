package service

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"isaacdex/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedItems inserts n items titled "Item 01".."Item n" in id order.
func seedItems(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Item %02d", i)
		if err := db.Create(&model.Item{Title: &title}).Error; err != nil {
			t.Fatalf("failed to seed item %d: %v", i, err)
		}
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *service.Error, got %T (%v)", err, err)
	}
	return serr.Kind
}
