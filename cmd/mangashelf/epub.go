package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/export"
	"github.com/mastersamasama/html-comic-reader-generator/pkg/services"
)

var epubOutput string

var epubCmd = &cobra.Command{
	Use:   "epub [path]",
	Short: "Export a comic folder to an EPUB",
	Long:  "Scan a folder tree of page images and compile it into one EPUB with a section per chapter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		gen := services.NewGenerator(services.Config{
			Root:    args[0],
			Workers: workers,
		}, logger)

		b, err := gen.BuildBook(cmd.Context())
		cobra.CheckErr(err)

		path, err := export.NewEPubBuilder(logger).Build(b, epubOutput)
		cobra.CheckErr(err)

		fmt.Printf("📦 EPUB written: %s (%d pages)\n", path, b.TotalPages)
	},
}

func init() {
	epubCmd.Flags().StringVar(&epubOutput, "output", "", "output file path (default <title>.epub next to the images)")
}
