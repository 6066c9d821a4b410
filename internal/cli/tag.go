package cli

import (
	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
)

// defaultTagOptions is the fallback vocabulary when the backend's tag
// listing is unavailable
var defaultTagOptions = []string{
	"Quick Play",
	"Family Friendly",
	"Strategy",
	"Party Game",
}

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag vocabulary commands",
	}

	cmd.AddCommand(newTagListCmd())

	return cmd
}

func newTagListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the tag vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			tags, err := client.ListTags(cmd.Context())
			if err != nil {
				out.PrintWarning("could not fetch tags, showing defaults: " + err.Error())
				tags = make([]model.Tag, 0, len(defaultTagOptions))
				for _, title := range defaultTagOptions {
					tags = append(tags, model.Tag{Title: title})
				}
			}

			out.Print(tags)
			return nil
		},
	}
}
