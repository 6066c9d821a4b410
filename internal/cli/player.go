package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known players",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := client.ListPlayers(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(players)
			return nil
		},
	}
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a player record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := client.CreatePlayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(*player)
			return nil
		},
	}
}
