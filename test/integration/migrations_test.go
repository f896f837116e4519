package integration

import (
	"testing"

	"github.com/fhuszti/studio-ms-go/internal/migration"
	"github.com/fhuszti/studio-ms-go/test/testutil"
)

func TestMigrateUpDownIntegration(t *testing.T) {
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer func() { _ = testDB.Cleanup() }()
	db := testDB.DB

	if err := migration.MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	// a second run is a no-op
	if err := migration.MigrateUp(db); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}

	recs := -1
	if err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&recs); err != nil {
		t.Fatalf("failed to query migrated table: %v", err)
	}
	if recs != 0 {
		t.Errorf("expected 0 rows in projects after migration, got %d", recs)
	}

	var idx int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND table_name = 'projects' AND index_name = 'idx_projects_updated_at'`).Scan(&idx)
	if err != nil || idx == 0 {
		t.Fatalf("updated_at index missing: count=%d err=%v", idx, err)
	}

	if err := migration.MigrateDown(db, 2); err != nil {
		t.Fatalf("MigrateDown failed: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&recs); err == nil {
		t.Error("projects table still exists after rolling back")
	}
}
