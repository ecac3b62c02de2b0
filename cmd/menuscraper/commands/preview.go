package commands

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Scrapes the week and prints the batch as a table instead of submitting it.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		batch := buildBatch(cmd.Context(), config)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Restaurant", "Date", "Courses"})
		for _, restaurant := range batch {
			for _, date := range restaurant.Menu.Dates() {
				t.AppendRow(table.Row{
					restaurant.Name,
					date,
					strings.Join(restaurant.Menu[date], "\n"),
				})
			}
			t.AppendSeparator()
		}
		t.Render()
	},
}
