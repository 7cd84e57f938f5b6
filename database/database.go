// Package database implements the schema-driven core of clinicbase: catalog
// introspection, record form validation, generic CRUD by primary key, column
// search, and the fixed catalog of reporting queries. Everything operates on
// a single injected SQLite connection and builds parameterized statements
// from introspected identifiers only.
package database

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the single shared connection every component operates on.
type Database struct {
	Client *sql.DB
}

// Record maps column names to nullable scalar values as returned by a query
// or assembled by the form engine. A nil value represents SQL NULL.
type Record map[string]any

// Grid is a tabular query result: ordered column names plus row tuples,
// ready for the caller to render.
type Grid struct {
	Columns []string
	Rows    [][]any
}

// Open opens the clinic database file. Foreign key enforcement is switched
// on so writes fail the same way regardless of which caller issues them.
func Open(path string) (*Database, error) {
	client, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if err := client.Ping(); err != nil {
		client.Close()
		return nil, err
	}

	return &Database{Client: client}, nil
}

// Close releases the underlying connection.
func (dao *Database) Close() error {
	return dao.Client.Close()
}

// queryGrid runs a read-only statement and scans every row into a Grid.
// Scan targets are chosen from the declared column type rather than the
// driver's scan type so computed columns (COUNT, ROUND, GROUP_CONCAT) come
// back with their natural driver types.
func (dao *Database) queryGrid(ctx context.Context, query string, args ...any) (Grid, error) {
	rows, err := dao.Client.QueryContext(ctx, query, args...)
	if err != nil {
		return Grid{}, err
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return Grid{}, err
	}

	grid := Grid{Columns: make([]string, len(columnTypes))}
	for i, ct := range columnTypes {
		grid.Columns[i] = ct.Name()
	}

	for rows.Next() {
		scanArgs := make([]any, len(columnTypes))

		for i, ct := range columnTypes {
			switch ct.DatabaseTypeName() {
			case "TEXT":
				scanArgs[i] = new(sql.NullString)
			case "INTEGER":
				scanArgs[i] = new(sql.NullInt64)
			case "REAL":
				scanArgs[i] = new(sql.NullFloat64)
			case "BLOB":
				scanArgs[i] = new([]byte)
			default:
				scanArgs[i] = new(any)
			}
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return Grid{}, err
		}

		tuple := make([]any, len(columnTypes))
		for i := range columnTypes {
			tuple[i] = unwrapScanned(scanArgs[i])
		}
		grid.Rows = append(grid.Rows, tuple)
	}

	return grid, rows.Err()
}

// queryRecords runs a read-only statement and returns one Record per row.
func (dao *Database) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	grid, err := dao.queryGrid(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return grid.Records(), nil
}

// Records converts the grid's tuples into column-keyed records.
func (g Grid) Records() []Record {
	records := make([]Record, 0, len(g.Rows))
	for _, row := range g.Rows {
		rec := make(Record, len(g.Columns))
		for i, name := range g.Columns {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

func unwrapScanned(target any) any {
	switch v := target.(type) {
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
		return nil
	case *sql.NullInt64:
		if v.Valid {
			return v.Int64
		}
		return nil
	case *sql.NullFloat64:
		if v.Valid {
			return v.Float64
		}
		return nil
	case *[]byte:
		if *v == nil {
			return nil
		}
		return *v
	case *any:
		if b, ok := (*v).([]byte); ok {
			return string(b)
		}
		return *v
	default:
		return target
	}
}
