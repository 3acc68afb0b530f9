package cli

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the stored task records, one per line",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	_, tasks, closeStore, err := loadTasks(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	return printRecords(cmd.OutOrStdout(), tasks.Records())
}
