package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestInsertAutoAssignsKey(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	values, err := BuildValues(tbl, map[string]string{
		"full_name": "Bob Ray",
		"city":      "Ottawa",
		"email":     "bob.ray@email.com",
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	id, err := dao.Insert(ctx, tbl, values)
	if err != nil {
		t.Fatal(err)
	}
	if id <= 0 {
		t.Fatalf("expected assigned key > 0, got %d", id)
	}

	var name string
	row := dao.Client.QueryRow("SELECT full_name FROM Patient WHERE patient_id = ?", id)
	if err := row.Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "Bob Ray" {
		t.Errorf("expected 'Bob Ray', got %q", name)
	}
}

func TestInsertRoundTrip(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	values, err := BuildValues(tbl, map[string]string{
		"full_name": "Cara Nolan",
		"email":     "cara.nolan@email.com",
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	id, err := dao.Insert(ctx, tbl, values)
	if err != nil {
		t.Fatal(err)
	}

	records, err := dao.Search(ctx, Criteria{
		Table:  tbl,
		Column: "patient_id",
		Term:   formatKey(id),
		Mode:   MatchExact,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec["full_name"] != "Cara Nolan" {
		t.Errorf("full_name = %v", rec["full_name"])
	}
	// Blank form fields were stored as NULL
	if rec["city"] != nil {
		t.Errorf("expected NULL city, got %v", rec["city"])
	}
}

func TestInsertBlankRequiredTextFailsAtDatabase(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	before := countRows(t, dao, "Patient")

	values, err := BuildValues(tbl, map[string]string{"city": "Ottawa"}, false)
	if err != nil {
		t.Fatal(err)
	}

	_, err = dao.Insert(ctx, tbl, values)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}

	if after := countRows(t, dao, "Patient"); after != before {
		t.Errorf("failed insert changed row count: %d -> %d", before, after)
	}
}

func TestInsertUniqueViolationLeavesStateUnchanged(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	before := countRows(t, dao, "Patient")

	// john.doe@email.com is already seeded
	values, err := BuildValues(tbl, map[string]string{
		"full_name": "John Clone",
		"email":     "john.doe@email.com",
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	_, err = dao.Insert(ctx, tbl, values)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}

	if after := countRows(t, dao, "Patient"); after != before {
		t.Errorf("failed insert changed row count: %d -> %d", before, after)
	}
}

func TestInsertUnknownColumn(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")

	_, err := dao.Insert(context.Background(), tbl, Record{"no_such_column": 1})
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestUpdateChangesOnlyTargetColumn(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	err := dao.Update(ctx, tbl, Record{"city": "Hamilton"}, int64(1))
	if err != nil {
		t.Fatal(err)
	}

	var name, city string
	row := dao.Client.QueryRow("SELECT full_name, city FROM Patient WHERE patient_id = 1")
	if err := row.Scan(&name, &city); err != nil {
		t.Fatal(err)
	}
	if city != "Hamilton" {
		t.Errorf("city = %q, want Hamilton", city)
	}
	if name != "John Doe" {
		t.Errorf("full_name changed unexpectedly: %q", name)
	}
}

func TestUpdateRenumbersPrimaryKey(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Room")
	ctx := context.Background()

	// Seeded rooms are referenced by appointments and cannot be renumbered
	// under foreign-key enforcement; use a room nothing points at.
	_, err := dao.Client.Exec(`INSERT INTO Room VALUES (103, 'Consultation', 1, 'Y')`)
	if err != nil {
		t.Fatal(err)
	}

	// The pre-edit key addresses the row; the new key value is written into
	// the same row within the same save.
	err = dao.Update(ctx, tbl, Record{"room_number": int64(105), "room_type": "Imaging"}, int64(103))
	if err != nil {
		t.Fatal(err)
	}

	var roomType string
	row := dao.Client.QueryRow("SELECT room_type FROM Room WHERE room_number = 105")
	if err := row.Scan(&roomType); err != nil {
		t.Fatalf("renumbered row not found: %v", err)
	}
	if roomType != "Imaging" {
		t.Errorf("room_type = %q", roomType)
	}

	var n int
	row = dao.Client.QueryRow("SELECT COUNT(*) FROM Room WHERE room_number = 103")
	if err := row.Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Error("old key still present after renumbering update")
	}
}

func TestUpdateRenumberBlockedByChildReferences(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Room")

	// Room 101 is referenced by seeded appointments; renumbering it must be
	// rejected by the foreign-key constraint and leave the row untouched.
	err := dao.Update(context.Background(), tbl, Record{"room_number": int64(105)}, int64(101))
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}

	var n int
	row := dao.Client.QueryRow("SELECT COUNT(*) FROM Room WHERE room_number = 101")
	if err := row.Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Error("referenced room changed by a rejected update")
	}
}

func TestUpdateAndDeleteRequireSingleColumnKey(t *testing.T) {
	dao := setupClinicDB(t)
	ctx := context.Background()

	for _, table := range []string{"Appointment_Staff", "DentalAction_Inventory"} {
		tbl := mustDescribe(t, dao, table)

		err := dao.Update(ctx, tbl, Record{"staff_id": int64(1)}, int64(1))
		if !errors.Is(err, ErrNoPrimaryKey) {
			t.Errorf("%s: Update expected ErrNoPrimaryKey, got %v", table, err)
		}

		err = dao.Delete(ctx, tbl, int64(1))
		if !errors.Is(err, ErrNoPrimaryKey) {
			t.Errorf("%s: Delete expected ErrNoPrimaryKey, got %v", table, err)
		}
	}
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")
	ctx := context.Background()

	id, err := dao.Insert(ctx, tbl, Record{"full_name": "Temp Person"})
	if err != nil {
		t.Fatal(err)
	}

	if err := dao.Delete(ctx, tbl, id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	// Deleting a missing key affects zero rows and is not an error
	if err := dao.Delete(ctx, tbl, id); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestDeleteForeignKeyViolation(t *testing.T) {
	dao := setupClinicDB(t)
	tbl := mustDescribe(t, dao, "Patient")

	// Patient 1 is referenced by seeded appointments
	err := dao.Delete(context.Background(), tbl, int64(1))
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("expected ErrConstraintViolation, got %v", err)
	}
}

// formatKey renders an assigned key the way a caller would type it into the
// search field; SQLite's column affinity converts it back for comparison.
func formatKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
