package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Insert writes a new row with a parameterized INSERT listing only the
// columns present in values, in declaration order. Columns the caller
// omitted (a blank primary key, untouched defaults) are left to the
// database. Returns the key the database assigned to the new row.
func (dao *Database) Insert(ctx context.Context, tbl Table, values Record) (int64, error) {
	if len(values) == 0 {
		return 0, errors.New("insert requires at least one column")
	}
	if err := checkColumns(tbl, values); err != nil {
		return 0, err
	}

	var cols, marks []string
	var args []any
	for _, col := range tbl.Columns {
		val, ok := values[col.Name]
		if !ok {
			continue
		}
		cols = append(cols, fmt.Sprintf("[%s]", col.Name))
		marks = append(marks, "?")
		args = append(args, val)
	}

	query := fmt.Sprintf("INSERT INTO [%s] (%s) VALUES (%s)",
		tbl.Name, strings.Join(cols, ", "), strings.Join(marks, ", "))

	result, err := dao.execCommit(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update rewrites one row addressed by its pre-edit primary-key value. Every
// column in values is bound in the SET clause, including a changed value for
// the key column itself; the original pkValue is bound last as the WHERE
// target. Editing the key therefore renumbers the row in place.
func (dao *Database) Update(ctx context.Context, tbl Table, values Record, pkValue any) error {
	pk, ok := tbl.PrimaryKey()
	if !ok {
		return NoPrimaryKeyErr(tbl.Name)
	}
	if len(values) == 0 {
		return errors.New("update requires at least one column")
	}
	if err := checkColumns(tbl, values); err != nil {
		return err
	}

	var sets []string
	var args []any
	for _, col := range tbl.Columns {
		val, ok := values[col.Name]
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("[%s] = ?", col.Name))
		args = append(args, val)
	}
	args = append(args, pkValue)

	query := fmt.Sprintf("UPDATE [%s] SET %s WHERE [%s] = ?",
		tbl.Name, strings.Join(sets, ", "), pk.Name)

	_, err := dao.execCommit(ctx, query, args...)
	return err
}

// Delete removes the row addressed by the primary-key value. Deleting a key
// that no longer exists affects zero rows and is not an error.
func (dao *Database) Delete(ctx context.Context, tbl Table, pkValue any) error {
	pk, ok := tbl.PrimaryKey()
	if !ok {
		return NoPrimaryKeyErr(tbl.Name)
	}

	query := fmt.Sprintf("DELETE FROM [%s] WHERE [%s] = ?", tbl.Name, pk.Name)

	_, err := dao.execCommit(ctx, query, pkValue)
	return err
}

// execCommit runs one write statement inside its own transaction so a
// rejected statement leaves the database exactly as it was.
func (dao *Database) execCommit(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx, err := dao.Client.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		tx.Rollback()
		return nil, wrapWriteErr(err)
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return nil, wrapWriteErr(err)
	}

	return result, nil
}

func checkColumns(tbl Table, values Record) error {
	for name := range values {
		if _, ok := tbl.Column(name); !ok {
			return UnknownColumnErr(tbl.Name, name)
		}
	}
	return nil
}
