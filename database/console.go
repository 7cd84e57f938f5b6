package database

import (
	"context"
	"errors"
	"strings"
)

// ConsoleResult is the outcome of one free-form console statement: a Grid
// for SELECTs, a rows-affected count for everything else.
type ConsoleResult struct {
	IsQuery      bool
	Grid         Grid
	RowsAffected int64
}

// ExecConsole runs one statement typed into the SQL console. SELECTs return
// their rows; any other statement is executed and committed. The statement
// text is unconstrained free input, so it sits outside the identifier
// guarantees the rest of the package makes; failures come back as
// ErrQueryExecution with the driver message preserved.
func (dao *Database) ExecConsole(ctx context.Context, stmt string) (ConsoleResult, error) {
	trimmed := strings.TrimSpace(stmt)
	if trimmed == "" {
		return ConsoleResult{}, errors.New("empty statement")
	}

	if strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		grid, err := dao.queryGrid(ctx, trimmed)
		if err != nil {
			return ConsoleResult{}, wrapQueryErr(err)
		}
		return ConsoleResult{IsQuery: true, Grid: grid}, nil
	}

	result, err := dao.execCommit(ctx, trimmed)
	if err != nil {
		if errors.Is(err, ErrConstraintViolation) {
			return ConsoleResult{}, err
		}
		return ConsoleResult{}, wrapQueryErr(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ConsoleResult{}, err
	}
	return ConsoleResult{RowsAffected: affected}, nil
}
