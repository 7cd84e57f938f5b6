package database

import (
	"context"
	"errors"
	"testing"
)

func TestExecConsoleSelect(t *testing.T) {
	dao := setupClinicDB(t)

	result, err := dao.ExecConsole(context.Background(),
		"SELECT full_name FROM Patient ORDER BY patient_id")
	if err != nil {
		t.Fatal(err)
	}

	if !result.IsQuery {
		t.Fatal("SELECT should report a query result")
	}
	if len(result.Grid.Rows) != 3 || result.Grid.Rows[0][0] != "John Doe" {
		t.Errorf("unexpected rows %v", result.Grid.Rows)
	}
}

func TestExecConsoleWriteCommits(t *testing.T) {
	dao := setupClinicDB(t)

	result, err := dao.ExecConsole(context.Background(),
		"UPDATE Room SET capacity = 2 WHERE room_number = 100")
	if err != nil {
		t.Fatal(err)
	}

	if result.IsQuery {
		t.Error("UPDATE should not report a query result")
	}
	if result.RowsAffected != 1 {
		t.Errorf("rows affected = %d", result.RowsAffected)
	}

	var capacity int
	row := dao.Client.QueryRow("SELECT capacity FROM Room WHERE room_number = 100")
	if err := row.Scan(&capacity); err != nil {
		t.Fatal(err)
	}
	if capacity != 2 {
		t.Errorf("capacity = %d, write was not committed", capacity)
	}
}

func TestExecConsoleBadSQL(t *testing.T) {
	dao := setupClinicDB(t)

	_, err := dao.ExecConsole(context.Background(), "SELECT * FROM NoSuchTable")
	if !errors.Is(err, ErrQueryExecution) {
		t.Errorf("expected ErrQueryExecution, got %v", err)
	}
}

func TestExecConsoleConstraintViolation(t *testing.T) {
	dao := setupClinicDB(t)

	_, err := dao.ExecConsole(context.Background(),
		"INSERT INTO Room (room_number, availability) VALUES (999, 'X')")
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestExecConsoleEmptyStatement(t *testing.T) {
	dao := setupClinicDB(t)

	if _, err := dao.ExecConsole(context.Background(), "   "); err == nil {
		t.Error("expected error for empty statement")
	}
}
