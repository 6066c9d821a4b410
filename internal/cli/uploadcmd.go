package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file to the media host and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			url, err := uploader.Upload(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(url)
			return nil
		},
	}
}
