package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List all tables in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		tables, err := dao.ListTables(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range tables {
			fmt.Println(name)
		}
		return nil
	},
}
