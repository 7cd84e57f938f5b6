package database

import (
	"context"
	"database/sql"
	"strings"
)

// TypeClass is the coarse validation category derived from a column's
// declared type. It drives which parse rules the form engine applies.
type TypeClass string

const (
	TypeText    TypeClass = "TEXT"
	TypeInteger TypeClass = "INTEGER"
	TypeReal    TypeClass = "REAL"
	TypeOther   TypeClass = "OTHER"
)

// Column describes one introspected column.
type Column struct {
	Name         string
	DeclaredType string    // Raw type from the catalog (e.g. "VARCHAR(20)")
	Type         TypeClass // Coarse class used for validation
	NotNull      bool
	Default      any // nil if none
	PKRank       int // Position in the primary key, 0 if not part of it
}

// Table describes one introspected table: its name plus columns in
// declaration order. Declaration order is what the form engine renders.
type Table struct {
	Name    string
	Columns []Column
}

// PrimaryKey returns the table's single primary-key column. Tables with a
// composite key report no primary key; they cannot be addressed row-by-row
// through the generic CRUD path.
func (tbl Table) PrimaryKey() (Column, bool) {
	var pk Column
	ranked := 0
	for _, col := range tbl.Columns {
		if col.PKRank > 0 {
			ranked++
			if col.PKRank == 1 {
				pk = col
			}
		}
	}
	if ranked == 1 && pk.Name != "" {
		return pk, true
	}
	return Column{}, false
}

// Column looks up a column by name.
func (tbl Table) Column(name string) (Column, bool) {
	for _, col := range tbl.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ListTables returns the names of all user tables in lexicographic order.
func (dao *Database) ListTables(ctx context.Context) ([]string, error) {
	rows, err := dao.Client.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// Describe introspects one table and returns its schema. The result is
// computed fresh on every call; nothing is cached across calls.
func (dao *Database) Describe(ctx context.Context, table string) (Table, error) {
	if err := ValidateIdentifier(table); err != nil {
		return Table{}, err
	}

	var count int
	row := dao.Client.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?;`, table)
	if err := row.Scan(&count); err != nil {
		return Table{}, err
	}
	if count == 0 {
		return Table{}, UnknownTableErr(table)
	}

	rows, err := dao.Client.QueryContext(ctx, `
		SELECT name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?)
		ORDER BY cid ASC;
	`, table)
	if err != nil {
		return Table{}, err
	}
	defer rows.Close()

	tbl := Table{Name: table}

	for rows.Next() {
		var name, declType sql.NullString
		var notNull sql.NullBool
		var dfltValue sql.NullString
		var pk sql.NullInt64

		if err := rows.Scan(&name, &declType, &notNull, &dfltValue, &pk); err != nil {
			return Table{}, err
		}

		col := Column{
			Name:         name.String,
			DeclaredType: declType.String,
			Type:         classifyType(declType.String),
			NotNull:      notNull.Bool,
			PKRank:       int(pk.Int64),
		}

		if dfltValue.Valid && dfltValue.String != "" {
			col.Default = parseDefaultValue(dfltValue.String)
		}

		tbl.Columns = append(tbl.Columns, col)
	}

	return tbl, rows.Err()
}

// classifyType maps a declared column type to its validation class using
// SQLite's affinity keywords.
func classifyType(declared string) TypeClass {
	t := strings.ToUpper(declared)
	switch {
	case strings.Contains(t, "INT"):
		return TypeInteger
	case strings.Contains(t, "CHAR"), strings.Contains(t, "CLOB"), strings.Contains(t, "TEXT"):
		return TypeText
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return TypeReal
	default:
		return TypeOther
	}
}

// parseDefaultValue converts SQLite's default value string to an appropriate
// Go value.
func parseDefaultValue(val string) any {
	// Remove quotes from string defaults
	if len(val) >= 2 && ((val[0] == '\'' && val[len(val)-1] == '\'') || (val[0] == '"' && val[len(val)-1] == '"')) {
		return val[1 : len(val)-1]
	}
	if val == "NULL" || val == "null" {
		return nil
	}
	// Return as-is for numbers and expressions like CURRENT_TIMESTAMP
	return val
}
