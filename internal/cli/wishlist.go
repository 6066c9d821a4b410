package cli

import (
	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
)

func newWishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Wishlist commands",
	}

	cmd.AddCommand(newWishlistListCmd())
	cmd.AddCommand(newWishlistAddCmd())
	cmd.AddCommand(newWishlistRemoveCmd())

	return cmd
}

func newWishlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wishlisted games",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := client.ListWishlist(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(games)
			return nil
		},
	}
}

func newWishlistAddCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add <game-id>",
		Short: "Add a game to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if err := client.AddToWishlist(cmd.Context(), model.GameID(args[0]), reason); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Added to wishlist")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why you want this game")

	return cmd
}

func newWishlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <game-id>",
		Short: "Remove a game from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if err := client.RemoveFromWishlist(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Removed from wishlist")
			return nil
		},
	}
}
