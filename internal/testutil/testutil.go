// Package testutil provides the in-memory database and quiet logger shared
// by the service tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/types/environments"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

var dbCounter atomic.Int64

// NewTestDB opens a fresh in-memory sqlite database with the full schema
// migrated. Each call gets its own database; tests never share state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Balance{},
		&model.SwapRequest{},
		&model.ChainAddress{},
		&model.WithdrawalReceipt{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func NewTestLogger() *logger.Logger {
	return logger.New(environments.Test)
}
