package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/vendor-tracker/internal/db"
	"github.com/diewo77/vendor-tracker/internal/models"
)

// setupTestDB opens a unique in-memory database per test to avoid
// cross-test collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	return gdb
}

func seedClient(t *testing.T, gdb *gorm.DB, name string) *models.Client {
	t.Helper()
	c := &models.Client{Name: name}
	require.NoError(t, NewClientStore(gdb).Create(c))
	return c
}

func seedVendor(t *testing.T, gdb *gorm.DB, name string) *models.Vendor {
	t.Helper()
	v := &models.Vendor{Name: name}
	require.NoError(t, NewVendorStore(gdb).Create(v))
	return v
}
