package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
)

func newFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Reference file commands",
	}

	cmd.AddCommand(newFileListCmd())
	cmd.AddCommand(newFileAddCmd())
	cmd.AddCommand(newFileDeleteCmd())

	return cmd
}

func newFileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game-id>",
		Short: "List a game's reference files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := client.ListFiles(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(files)
			return nil
		},
	}
}

func newFileAddCmd() *cobra.Command {
	var title, link, path string

	cmd := &cobra.Command{
		Use:   "add <game-id>",
		Short: "Attach a reference file to a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if title == "" {
				return model.ErrEmptyFileTitle
			}

			// A local file is pushed to the media host first; its hosted
			// URL becomes the stored link.
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()

				link, err = uploader.Upload(cmd.Context(), path, f)
				if err != nil {
					return err
				}
			}
			if link == "" {
				return model.ErrEmptyFileLink
			}

			file, err := client.CreateFile(cmd.Context(), model.GameID(args[0]), model.FileInput{
				Title: title,
				Link:  link,
			})
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(*file)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "File title (required)")
	cmd.Flags().StringVar(&link, "link", "", "External URL of the file")
	cmd.Flags().StringVar(&path, "path", "", "Local file to upload to the media host")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newFileDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <file-id>",
		Short: "Remove a file attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if !yes && !confirm(cmd, "Delete this file?") {
				return nil
			}

			if err := client.DeleteFile(cmd.Context(), model.FileID(args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("File deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
