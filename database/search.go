package database

import (
	"context"
	"fmt"
)

// MatchMode selects how a search term is matched against column values.
type MatchMode int

const (
	MatchContains MatchMode = iota
	MatchStartsWith
	MatchExact
)

// String returns the mode name used on the CLI.
func (m MatchMode) String() string {
	switch m {
	case MatchContains:
		return "contains"
	case MatchStartsWith:
		return "starts-with"
	case MatchExact:
		return "exact"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode maps a mode name to its MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "contains":
		return MatchContains, nil
	case "starts-with":
		return MatchStartsWith, nil
	case "exact":
		return MatchExact, nil
	default:
		return 0, fmt.Errorf("unknown match mode %q (want contains, starts-with or exact)", s)
	}
}

// Criteria describes one search invocation: an introspected table, one of
// its columns, a non-empty term, and a match mode.
type Criteria struct {
	Table  Table
	Column string
	Term   string
	Mode   MatchMode
}

// Search returns the rows of the table whose column matches the term, in
// database order. The term is always bound as a parameter; only the table
// and column identifiers, which come from the introspected catalog, appear
// in the statement text.
func (dao *Database) Search(ctx context.Context, c Criteria) ([]Record, error) {
	if _, ok := c.Table.Column(c.Column); !ok {
		return nil, UnknownColumnErr(c.Table.Name, c.Column)
	}
	if c.Term == "" {
		return nil, ErrEmptySearchTerm
	}

	var query string
	var arg any
	switch c.Mode {
	case MatchContains:
		query = fmt.Sprintf("SELECT * FROM [%s] WHERE [%s] LIKE ?", c.Table.Name, c.Column)
		arg = "%" + c.Term + "%"
	case MatchStartsWith:
		query = fmt.Sprintf("SELECT * FROM [%s] WHERE [%s] LIKE ?", c.Table.Name, c.Column)
		arg = c.Term + "%"
	case MatchExact:
		query = fmt.Sprintf("SELECT * FROM [%s] WHERE [%s] = ?", c.Table.Name, c.Column)
		arg = c.Term
	default:
		return nil, fmt.Errorf("unknown match mode %d", c.Mode)
	}

	records, err := dao.queryRecords(ctx, query, arg)
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	return records, nil
}
