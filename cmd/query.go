package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/database"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the predefined reporting queries",
}

var queryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available query labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, label := range database.CatalogLabels() {
			fmt.Println(label)
		}
		return nil
	},
}

var queryRunCmd = &cobra.Command{
	Use:   "run <label>",
	Short: "Run one predefined query by label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		grid, err := dao.RunCatalogQuery(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		heading.Printf("Query: %s\n\n", args[0])
		printGrid(grid)
		return nil
	},
}

func init() {
	queryCmd.AddCommand(queryListCmd)
	queryCmd.AddCommand(queryRunCmd)
}
