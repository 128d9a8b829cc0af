package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/data"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all indexed books",
	Long:  "Display every book recorded in the library index in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		if indexPath == "" {
			fmt.Println("📚 No index file given. Pass --index to record and list generated books.")
			return
		}

		store, err := data.Open(indexPath)
		cobra.CheckErr(err)
		defer store.Close()

		books, err := store.ListBooks()
		cobra.CheckErr(err)

		if len(books) == 0 {
			fmt.Println("📚 Index is empty. Generate a reader with --index to record books.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 34},
			{Title: "Pages", Width: 7},
			{Title: "Chapters", Width: 8},
			{Title: "Mode", Width: 9},
			{Title: "Generated", Width: 16},
		}

		rows := []table.Row{}
		for _, b := range books {
			rows = append(rows, table.Row{
				truncateString(b.Title, 32),
				fmt.Sprintf("%d", b.TotalPages),
				fmt.Sprintf("%d", b.ChapterCount),
				b.Mode,
				b.GeneratedAt.Format("2006-01-02 15:04"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Library (%d books)\n\n", len(books))
		fmt.Println(t.View())
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
