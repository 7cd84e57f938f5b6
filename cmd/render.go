package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/mbeaudet/clinicbase/database"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
)

// printGrid renders a tabular result with a row-count footer.
func printGrid(grid database.Grid) {
	if len(grid.Rows) == 0 {
		fmt.Println("No results found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(grid.Columns, "\t"))

	for _, row := range grid.Rows {
		cells := make([]string, len(row))
		for i, val := range row {
			cells[i] = formatValue(val)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	fmt.Printf("\n%d row(s) returned\n", len(grid.Rows))
}

// printRecords renders records in the table's column order.
func printRecords(tbl database.Table, records []database.Record) {
	grid := database.Grid{}
	for _, col := range tbl.Columns {
		grid.Columns = append(grid.Columns, col.Name)
	}
	for _, rec := range records {
		row := make([]any, len(grid.Columns))
		for i, name := range grid.Columns {
			row[i] = rec[name]
		}
		grid.Rows = append(grid.Rows, row)
	}
	printGrid(grid)
}

// formatValue renders one cell; NULL prints as NULL.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// rawFromRecord converts a fetched record back to the raw text form the
// form engine validates, so edits start from the stored values.
func rawFromRecord(tbl database.Table, rec database.Record) map[string]string {
	raw := make(map[string]string, len(tbl.Columns))
	for _, col := range tbl.Columns {
		val := rec[col.Name]
		if val == nil {
			raw[col.Name] = ""
			continue
		}
		raw[col.Name] = formatValue(val)
	}
	return raw
}

// parseSetFlags splits repeated --set col=value pairs into a raw input map.
func parseSetFlags(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		col, val, found := strings.Cut(pair, "=")
		if !found || col == "" {
			return nil, fmt.Errorf("invalid --set %q (want column=value)", pair)
		}
		raw[col] = val
	}
	return raw, nil
}
