package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
	"github.com/bgshelf/bgshelf/internal/services/playlog"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Play session commands",
	}

	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionAddCmd())
	cmd.AddCommand(newSessionEditCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func playlogService() *playlog.Service {
	return playlog.New(client, playlog.NewResolver(client, logger), logger)
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game-id>",
		Short: "List a game's play sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := client.ListSessions(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(sessions)
			return nil
		},
	}
}

func newSessionAddCmd() *cobra.Command {
	var date, notes string
	var players []string

	cmd := &cobra.Command{
		Use:   "add <game-id>",
		Short: "Record a play session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}

			gameID := model.GameID(args[0])

			form := playlog.NewForm()
			form.Date = date
			form.Notes = notes
			for _, name := range players {
				if err := form.AddPlayer(name); err != nil {
					return fmt.Errorf("player %q: %w", name, err)
				}
			}

			result, err := playlogService().LogSession(cmd.Context(), gameID, form)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for _, name := range result.Dropped {
				out.PrintWarning(fmt.Sprintf("player %q could not be resolved and was dropped", name))
			}
			return printSessionsFresh(cmd, out, gameID)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date, yyyy-mm-dd (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().StringArrayVar(&players, "player", nil, "Participant name (repeatable)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newSessionEditCmd() *cobra.Command {
	var date, notes string
	var players []string

	cmd := &cobra.Command{
		Use:   "edit <game-id> <session-id>",
		Short: "Edit a play session; unset flags keep their current values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}

			gameID := model.GameID(args[0])
			sessionID := model.SessionID(args[1])

			current, err := findSession(cmd, gameID, sessionID)
			if err != nil {
				return err
			}

			// Pre-fill from the existing session, then overlay set flags
			form := playlog.FormFromSession(*current)
			if cmd.Flags().Changed("date") {
				form.Date = date
			}
			if cmd.Flags().Changed("notes") {
				form.Notes = notes
			}
			if cmd.Flags().Changed("player") {
				for _, name := range form.Players() {
					_ = form.RemovePlayer(name)
				}
				for _, name := range players {
					if err := form.AddPlayer(name); err != nil {
						return fmt.Errorf("player %q: %w", name, err)
					}
				}
			}

			result, err := playlogService().UpdateSession(cmd.Context(), sessionID, form)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			for _, name := range result.Dropped {
				out.PrintWarning(fmt.Sprintf("player %q could not be resolved and was dropped", name))
			}
			return printSessionsFresh(cmd, out, gameID)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date, yyyy-mm-dd")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	cmd.Flags().StringArrayVar(&players, "player", nil, "Participant name (repeatable; replaces the full list)")

	return cmd
}

func newSessionDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <game-id> <session-id>",
		Short: "Delete a play session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if !yes && !confirm(cmd, "Delete this session?") {
				return nil
			}

			if err := client.DeleteSession(cmd.Context(), model.SessionID(args[1])); err != nil {
				return err
			}
			return printSessionsFresh(cmd, NewOutput(cfg.Output), model.GameID(args[0]))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func findSession(cmd *cobra.Command, gameID model.GameID, sessionID model.SessionID) (*model.Session, error) {
	sessions, err := client.ListSessions(cmd.Context(), gameID)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == sessionID {
			return &sessions[i], nil
		}
	}
	return nil, fmt.Errorf("session %s not found for game %s", sessionID, gameID)
}

// printSessionsFresh re-fetches the session list after a mutation so the
// output always reflects a fresh server read.
func printSessionsFresh(cmd *cobra.Command, out *Output, gameID model.GameID) error {
	sessions, err := client.ListSessions(cmd.Context(), gameID)
	if err != nil {
		return err
	}
	out.Print(sessions)
	return nil
}
