package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <statement>",
	Short: "Execute a free-form SQL statement",
	Long: `Execute one SQL statement exactly as typed. SELECT statements print
their rows; anything else is executed and committed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		result, err := dao.ExecConsole(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		if result.IsQuery {
			printGrid(result.Grid)
			return nil
		}
		success.Printf("Statement executed. %d row(s) affected.\n", result.RowsAffected)
		return nil
	},
}
