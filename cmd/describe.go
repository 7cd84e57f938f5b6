package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/database"
)

var describeCmd = &cobra.Command{
	Use:   "describe [table]",
	Short: "Show column definitions for one table, or the whole schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		var tables []string
		if len(args) == 1 {
			tables = args
		} else {
			tables, err = dao.ListTables(cmd.Context())
			if err != nil {
				return err
			}
		}

		for _, name := range tables {
			tbl, err := dao.Describe(cmd.Context(), name)
			if err != nil {
				return err
			}
			printTable(tbl)
		}
		return nil
	},
}

func printTable(tbl database.Table) {
	heading.Printf("TABLE: %s\n", tbl.Name)
	fmt.Println(strings.Repeat("-", 40))
	for _, col := range tbl.Columns {
		var notes []string
		if col.PKRank > 0 {
			notes = append(notes, "PRIMARY KEY")
		}
		if col.NotNull {
			notes = append(notes, "NOT NULL")
		}
		if col.Default != nil {
			notes = append(notes, fmt.Sprintf("DEFAULT %v", col.Default))
		}
		fmt.Printf("  %-25s %-15s %s\n", col.Name, col.DeclaredType, strings.Join(notes, " "))
	}
	fmt.Println()
}
