package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/paomind/internal/custom"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export custom PAO items as CSV, JSON or text",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format, err := custom.ParseFormat(formatName)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		items := e.custom.All()
		if output == "" || output == "-" {
			return custom.Encode(cmd.OutOrStdout(), format, items)
		}
		if err := custom.ExportFile(output, format, items); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d items to %s\n", len(items), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "csv", "Output format: csv, json or text")
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
