package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mastersamasama/html-comic-reader-generator/pkg/services"
)

var (
	bookshelfOutput  string
	bookshelfReaders bool
)

var bookshelfCmd = &cobra.Command{
	Use:   "bookshelf [path]",
	Short: "Generate a gallery index for a collection of comic folders",
	Long:  "Build a card-grid bookshelf over every book folder directly under the given root, generating missing readers along the way",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shelf := services.NewBookshelf(services.BookshelfConfig{
			Root:            args[0],
			OutputName:      bookshelfOutput,
			GenerateReaders: bookshelfReaders,
			Threshold:       threshold,
			Workers:         workers,
			IndexPath:       indexPath,
		}, logger)

		res, err := shelf.Generate(cmd.Context())
		cobra.CheckErr(err)

		fmt.Printf("📚 Bookshelf generated: %s (%d books)\n", res.OutputPath, len(res.Items))
		for _, name := range res.Skipped {
			fmt.Printf("⚠️  Skipped %s: no reader document\n", name)
		}
	},
}

func init() {
	bookshelfCmd.Flags().StringVar(&bookshelfOutput, "output", services.DefaultBookshelfOutput, "bookshelf output file name")
	bookshelfCmd.Flags().BoolVar(&bookshelfReaders, "readers", true, "generate readers for books that lack one")
}
