package testutil

import (
	"testing"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/database"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// NewTestStore returns a migrated in-memory store with zero artificial
// latency and the portal's collection schemas registered.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.Open()
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return store.New(db, 0, models.Schemas())
}
