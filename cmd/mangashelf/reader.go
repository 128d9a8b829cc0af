package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/services"
)

var (
	readerMode   string
	readerOutput string
)

var readerCmd = &cobra.Command{
	Use:   "reader [path]",
	Short: "Generate a reader document for one comic folder",
	Long:  "Scan a folder tree of page images and write a self-contained HTML reader into it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode, err := services.ParseMode(readerMode)
		cobra.CheckErr(err)

		gen := services.NewGenerator(services.Config{
			Root:       args[0],
			Mode:       mode,
			Threshold:  threshold,
			Workers:    workers,
			OutputName: readerOutput,
			IndexPath:  indexPath,
		}, logger)

		res, err := gen.GenerateReader(cmd.Context())
		cobra.CheckErr(err)

		fmt.Printf("📖 Reader generated: %s\n", res.OutputPath)
		fmt.Printf("   %d pages in %d chapters (%s mode)\n", res.Book.TotalPages, len(res.Book.Chapters), res.Mode)
	},
}

func init() {
	readerCmd.Flags().StringVar(&readerMode, "mode", "auto", "reader layout (auto, eager, windowed)")
	readerCmd.Flags().StringVar(&readerOutput, "output", "", "output file name (default depends on mode)")
}
