package sqlstore

import (
	"os"
	"testing"

	"siparis-backend/internal/store"
	"siparis-backend/internal/store/storetest"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// POSTGRES_TEST_DSN tanımlı değilse atlanır. Tablolar her alt testte boşaltılır.
func TestSQLStore(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN tanımlı değil")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	s, err := New(db)
	require.NoError(t, err)

	storetest.Run(t, func(t *testing.T) *store.Store {
		require.NoError(t, db.Exec("TRUNCATE TABLE products, orders, settings").Error)
		return s
	})
}
