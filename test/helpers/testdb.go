package helpers

import (
	"fmt"
	"sync/atomic"
	"testing"

	"jobboard_backend/database"

	"gorm.io/gorm"
)

var dbCounter int64

// TestDSN - уникальная in-memory sqlite база на каждый тестовый сервер
func TestDSN() string {
	n := atomic.AddInt64(&dbCounter, 1)
	return fmt.Sprintf("file:integration_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", n)
}

// NewTestDB открывает и мигрирует тестовую базу, закрывается по t.Cleanup
func NewTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Options{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД (%s): %v", dsn, err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
