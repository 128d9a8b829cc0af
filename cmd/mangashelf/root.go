package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/app"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/logging"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/services"
)

var (
	logLevel  string
	logFormat string
	threshold int
	workers   int
	indexPath string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mangashelf",
	Short: "Static HTML comic reader and bookshelf generator",
	Long:  "Turn folders of page images into self-contained HTML readers, card-grid bookshelves and EPUBs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l, err := logging.New(logging.Options{Level: logLevel, Format: logFormat})
		cobra.CheckErr(err)
		logger = l
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch the interactive prompt by default
		a := app.NewApp(app.Options{
			Threshold: threshold,
			Workers:   workers,
			IndexPath: indexPath,
			Logger:    logger,
		})
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", services.DefaultThreshold, "page count at which auto mode switches to the windowed reader")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", services.DefaultWorkers, "parallel image classification workers")
	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "DuckDB library index file (empty disables indexing)")

	rootCmd.AddCommand(readerCmd)
	rootCmd.AddCommand(bookshelfCmd)
	rootCmd.AddCommand(epubCmd)
	rootCmd.AddCommand(listCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
