package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/giftlane/souvenirs-backend/internal/data/db"
	types "github.com/giftlane/souvenirs-backend/internal/domain"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

var (
	dbOnce sync.Once
	dbh    *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a migrated database shared by the package's tests. Default is
// an in-memory sqlite database pinned to a single connection so that
// transactions serialize the same way a single postgres row lock would;
// set TEST_POSTGRES_DSN to run against postgres instead.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		var dialector gorm.Dialector
		if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
			dialector = postgres.Open(dsn)
		} else {
			dialector = sqlite.Open("file::memory:?cache=shared")
		}

		dbh, dbErr = gorm.Open(dialector, &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}

		if dbh.Dialector.Name() == "sqlite" {
			sqlDB, err := dbh.DB()
			if err != nil {
				dbErr = err
				return
			}
			sqlDB.SetMaxOpenConns(1)
		}

		if err := db.AutoMigrateAll(dbh); err != nil {
			dbErr = err
			return
		}
		if err := db.EnsureCatalogIndexes(dbh); err != nil {
			dbErr = err
			return
		}
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return dbh
}

// Tx hands out a transaction that rolls back when the test finishes, so
// repo tests never leak rows into each other.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// CleanTables empties every catalog table. For tests that commit real
// transactions (the add-review path) and cannot run inside Tx.
func CleanTables(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	for _, model := range []interface{}{
		&types.Review{},
		&types.CartItem{},
		&types.Cart{},
		&types.SouvenirTag{},
		&types.Tag{},
		&types.Souvenir{},
		&types.Country{},
		&types.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			tb.Fatalf("clean tables: %v", err)
		}
	}
}
