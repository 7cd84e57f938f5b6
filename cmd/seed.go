package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/seed"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the clinic schema and load sample data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := openDB()
		if err != nil {
			return err
		}
		defer dao.Close()

		if seedReset {
			if err := seed.Reset(dao.Client); err != nil {
				return err
			}
			success.Println("Schema recreated and sample data loaded.")
			return nil
		}

		if err := seed.CreateAll(dao.Client); err != nil {
			return err
		}
		if err := seed.Populate(dao.Client); err != nil {
			return err
		}
		success.Println("Schema created and sample data loaded.")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "drop all tables first")
}
