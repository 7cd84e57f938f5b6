// Package cmd wires the command-line surface over the database core. Every
// command opens the configured database, calls exactly one core operation
// and renders the result.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbeaudet/clinicbase/config"
	"github.com/mbeaudet/clinicbase/database"
)

var rootCmd = &cobra.Command{
	Use:   "clinicbase",
	Short: "Dental clinic data manager over a local SQLite database",
	Long: `clinicbase manages a dental clinic database from the command line.

The schema is discovered at runtime, so records in any table can be listed,
searched, added, edited and deleted generically. A fixed catalog of
reporting queries covers the clinic's recurring questions.

Examples:

  clinicbase seed --reset
  clinicbase tables
  clinicbase describe Patient
  clinicbase search Patient full_name John --mode contains
  clinicbase query run "Patient Billing Summary"
  clinicbase add Patient --set full_name='Bob Ray' --set city=Ottawa
`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDB opens the configured clinic database.
func openDB() (*database.Database, error) {
	return database.Open(config.Load().DBPath)
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(seedCmd)
}
