package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mbeaudet/clinicbase/seed"
)

// setupTestDB opens a fresh database file under the test's temp dir.
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	dao, err := Open(filepath.Join(t.TempDir(), "clinic_test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { dao.Close() })

	return dao
}

// setupClinicDB opens a fresh database with the full clinic schema and
// sample data loaded.
func setupClinicDB(t *testing.T) *Database {
	t.Helper()

	dao := setupTestDB(t)
	if err := seed.CreateAll(dao.Client); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := seed.Populate(dao.Client); err != nil {
		t.Fatalf("failed to populate sample data: %v", err)
	}
	return dao
}

// mustDescribe introspects a table or fails the test.
func mustDescribe(t *testing.T, dao *Database, table string) Table {
	t.Helper()

	tbl, err := dao.Describe(context.Background(), table)
	if err != nil {
		t.Fatalf("Describe(%s) failed: %v", table, err)
	}
	return tbl
}

// countRows counts the rows in a table.
func countRows(t *testing.T, dao *Database, table string) int {
	t.Helper()

	var n int
	row := dao.Client.QueryRow("SELECT COUNT(*) FROM " + table)
	if err := row.Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestQueryGridScansDeclaredTypes(t *testing.T) {
	dao := setupClinicDB(t)

	grid, err := dao.queryGrid(context.Background(),
		"SELECT patient_id, full_name, medical_history FROM Patient WHERE patient_id = ?", 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(grid.Columns) != 3 || grid.Columns[1] != "full_name" {
		t.Errorf("unexpected columns %v", grid.Columns)
	}
	if len(grid.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(grid.Rows))
	}

	row := grid.Rows[0]
	if id, ok := row[0].(int64); !ok || id != 3 {
		t.Errorf("expected patient_id int64(3), got %T %v", row[0], row[0])
	}
	if name, ok := row[1].(string); !ok || name != "Alice Wong" {
		t.Errorf("expected full_name 'Alice Wong', got %T %v", row[1], row[1])
	}
	// Alice's medical history is seeded as NULL
	if row[2] != nil {
		t.Errorf("expected NULL medical_history, got %v", row[2])
	}
}

func TestGridRecords(t *testing.T) {
	grid := Grid{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{int64(1), "x"}, {int64(2), nil}},
	}

	records := grid.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["a"] != int64(1) || records[0]["b"] != "x" {
		t.Errorf("unexpected first record %v", records[0])
	}
	if records[1]["b"] != nil {
		t.Errorf("expected nil for NULL value, got %v", records[1]["b"])
	}
}
