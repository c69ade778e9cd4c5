package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/paomind/internal/custom"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import custom PAO items from a CSV, JSON or text file",
	Long: "Import custom PAO items. The format follows the file extension (.csv, .json, .txt)\n" +
		"unless --format is given. Invalid CSV rows and text lines are skipped and reported.\n\n" +
		"Text format, one number per line:\n\n" + custom.TextFormatGuide,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		format := custom.FormatForPath(path)
		if name, _ := cmd.Flags().GetString("format"); name != "" {
			f, err := custom.ParseFormat(name)
			if err != nil {
				return err
			}
			format = f
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		report, err := e.custom.ImportFile(ctxOf(cmd), path, format)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.Summary())
		for _, row := range report.Skipped {
			fmt.Fprintln(out, "  "+row)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("format", "", "Input format: csv, json or text (default: by extension)")
}
