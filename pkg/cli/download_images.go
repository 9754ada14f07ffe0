package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alejandorosumah-mansa/dashboard-suppliers/pkg/images"
)

var (
	downloadManifest string
	downloadOutDir   string
)

var downloadImagesCmd = &cobra.Command{
	Use:   "download-images",
	Short: "Download the images listed in a CSV manifest",
	RunE:  runDownloadImages,
}

func init() {
	downloadImagesCmd.Flags().StringVar(&downloadManifest, "manifest", "static/data/images.csv", "CSV manifest with a url or image_url column")
	downloadImagesCmd.Flags().StringVar(&downloadOutDir, "out", "static/img", "Directory to save downloaded images into")
}

func runDownloadImages(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	summary, err := images.NewDownloader(nil, nil, logger).Run(cmd.Context(), downloadManifest, downloadOutDir)
	if err != nil {
		return err
	}

	fmt.Printf("Downloaded %d of %d images (%d skipped, %d failed)\n",
		summary.Downloaded, summary.Total, summary.Skipped, summary.Failed)
	return nil
}
