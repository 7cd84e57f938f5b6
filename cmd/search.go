package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/database"
)

var searchMode string

var searchCmd = &cobra.Command{
	Use:   "search <table> <column> <term>",
	Short: "Search a table column for matching rows",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := database.ParseMatchMode(searchMode)
		if err != nil {
			return err
		}

		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		tbl, err := dao.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		records, err := dao.Search(cmd.Context(), database.Criteria{
			Table:  tbl,
			Column: args[1],
			Term:   args[2],
			Mode:   mode,
		})
		if err != nil {
			return err
		}

		printRecords(tbl, records)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchMode, "mode", "contains", "match mode: contains, starts-with or exact")
}
