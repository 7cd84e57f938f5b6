package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/database"
)

var (
	addSetFlags  []string
	editSetFlags []string
)

var addCmd = &cobra.Command{
	Use:   "add <table>",
	Short: "Insert a record built from --set column=value pairs",
	Long: `Insert a record into any table. Fields not given are left blank and
stored as NULL (or the column default, for an omitted primary key).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := parseSetFlags(addSetFlags)
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

		values, err := database.BuildValues(tbl, raw, false)
		if err != nil {
			return err
		}

		id, err := dao.Insert(cmd.Context(), tbl, values)
		if err != nil {
			return err
		}

		success.Printf("Inserted into %s (id %d)\n", tbl.Name, id)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <table> <key>",
	Short: "Update the record with the given primary-key value",
	Long: `Update one record. The record is loaded first so unspecified fields
keep their stored values; --set pairs overwrite individual fields. The key
given on the command line stays the row's address for this save even if a
--set pair renumbers the key column itself.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides, err := parseSetFlags(editSetFlags)
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
		pk, ok := tbl.PrimaryKey()
		if !ok {
			return database.NoPrimaryKeyErr(tbl.Name)
		}

		existing, err := dao.Search(cmd.Context(), database.Criteria{
			Table:  tbl,
			Column: pk.Name,
			Term:   args[1],
			Mode:   database.MatchExact,
		})
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return fmt.Errorf("no %s record with %s = %s", tbl.Name, pk.Name, args[1])
		}

		raw := rawFromRecord(tbl, existing[0])
		for col, val := range overrides {
			raw[col] = val
		}

		values, err := database.BuildValues(tbl, raw, true)
		if err != nil {
			return err
		}

		if err := dao.Update(cmd.Context(), tbl, values, args[1]); err != nil {
			return err
		}

		success.Printf("Updated %s record %s\n", tbl.Name, args[1])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <key>",
	Short: "Delete the record with the given primary-key value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		tbl, err := dao.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if err := dao.Delete(cmd.Context(), tbl, args[1]); err != nil {
			return err
		}

		success.Printf("Deleted %s record %s\n", tbl.Name, args[1])
		return nil
	},
}

func init() {
	addCmd.Flags().StringArrayVar(&addSetFlags, "set", nil, "column=value pair (repeatable)")
	editCmd.Flags().StringArrayVar(&editSetFlags, "set", nil, "column=value pair (repeatable)")
}
