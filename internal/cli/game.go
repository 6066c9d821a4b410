package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
	"github.com/bgshelf/bgshelf/internal/services/collection"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game collection commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameAddCmd())
	cmd.AddCommand(newGameEditCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameTopCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	var criteria collection.Criteria
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := criteria.Validate(); err != nil {
				return err
			}

			games, err := client.ListGames(cmd.Context())
			if err != nil {
				return err
			}

			if !all {
				owned := games[:0]
				for _, g := range games {
					if g.IsOwned {
						owned = append(owned, g)
					}
				}
				games = owned
			}

			NewOutput(cfg.Output).Print(collection.Filter(games, criteria))
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Search, "search", "", "Match title, genre, or publisher")
	cmd.Flags().StringVar(&criteria.Genre, "genre", "", "Exact genre")
	cmd.Flags().StringVar(&criteria.PlayerBucket, "players", "", "Player count: 1-7 or 8+")
	cmd.Flags().StringArrayVar(&criteria.Tags, "tag", nil, "Required tag (repeatable; a game must carry all)")
	cmd.Flags().BoolVar(&all, "all", false, "Include games not marked as owned")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := client.GetGame(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(*game)
			return nil
		},
	}
}

// gameFlags binds the shared add/edit flag set
type gameFlags struct {
	title       string
	description string
	genre       string
	minPlayers  int
	maxPlayers  int
	playTime    int
	publisher   string
	age         string
	rating      float64
	myRating    float64
	cover       string
	coverFile   string
	owned       bool
	tags        []string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Game title")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.genre, "genre", "", "Genre")
	cmd.Flags().IntVar(&f.minPlayers, "min-players", 1, "Minimum player count")
	cmd.Flags().IntVar(&f.maxPlayers, "max-players", 1, "Maximum player count")
	cmd.Flags().IntVar(&f.playTime, "play-time", 0, "Play time in minutes")
	cmd.Flags().StringVar(&f.publisher, "publisher", "", "Publisher")
	cmd.Flags().StringVar(&f.age, "age", "", "Age rating, e.g. 12+")
	cmd.Flags().Float64Var(&f.rating, "rating", 0, "Public rating")
	cmd.Flags().Float64Var(&f.myRating, "my-rating", 0, "Personal rating")
	cmd.Flags().StringVar(&f.cover, "cover", "", "Cover image URL")
	cmd.Flags().StringVar(&f.coverFile, "cover-file", "", "Local image to upload as the cover")
	cmd.Flags().BoolVar(&f.owned, "owned", true, "Mark the game as owned")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "Tag title (repeatable)")
}

// resolveCover uploads --cover-file to the media host when given,
// otherwise returns the --cover URL as-is.
func (f *gameFlags) resolveCover(cmd *cobra.Command) (string, error) {
	if f.coverFile == "" {
		return f.cover, nil
	}

	file, err := os.Open(f.coverFile)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	return uploader.Upload(cmd.Context(), f.coverFile, file)
}

func newGameAddCmd() *cobra.Command {
	var flags gameFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if flags.title == "" {
				return model.ErrEmptyGameTitle
			}

			cover, err := flags.resolveCover(cmd)
			if err != nil {
				return err
			}

			input := model.GameInput{
				Title:       flags.title,
				Description: flags.description,
				Genre:       flags.genre,
				MinPlayers:  flags.minPlayers,
				MaxPlayers:  flags.maxPlayers,
				PlayTime:    flags.playTime,
				Publisher:   flags.publisher,
				Age:         flags.age,
				Rating:      flags.rating,
				CoverImage:  cover,
				IsOwned:     flags.owned,
				Tags:        tagInputs(flags.tags),
			}
			if cmd.Flags().Changed("my-rating") {
				input.MyRating = &flags.myRating
			}

			game, err := client.CreateGame(cmd.Context(), input)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(*game)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newGameEditCmd() *cobra.Command {
	var flags gameFlags

	cmd := &cobra.Command{
		Use:   "edit <game-id>",
		Short: "Edit a game; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}

			id := model.GameID(args[0])
			current, err := client.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}

			input := model.GameInput{
				Title:       current.Title,
				Description: current.Description,
				Genre:       current.Genre,
				MinPlayers:  current.MinPlayers,
				MaxPlayers:  current.MaxPlayers,
				PlayTime:    current.PlayTime,
				Publisher:   current.Publisher,
				Age:         current.Age,
				Rating:      current.Rating,
				MyRating:    current.MyRating,
				CoverImage:  current.CoverImage,
				IsOwned:     current.IsOwned,
			}
			for _, title := range current.TagTitles() {
				input.Tags = append(input.Tags, model.TagInput{Title: title})
			}

			// Overlay only the flags the user set
			if cmd.Flags().Changed("title") {
				input.Title = flags.title
			}
			if cmd.Flags().Changed("description") {
				input.Description = flags.description
			}
			if cmd.Flags().Changed("genre") {
				input.Genre = flags.genre
			}
			if cmd.Flags().Changed("min-players") {
				input.MinPlayers = flags.minPlayers
			}
			if cmd.Flags().Changed("max-players") {
				input.MaxPlayers = flags.maxPlayers
			}
			if cmd.Flags().Changed("play-time") {
				input.PlayTime = flags.playTime
			}
			if cmd.Flags().Changed("publisher") {
				input.Publisher = flags.publisher
			}
			if cmd.Flags().Changed("age") {
				input.Age = flags.age
			}
			if cmd.Flags().Changed("rating") {
				input.Rating = flags.rating
			}
			if cmd.Flags().Changed("my-rating") {
				input.MyRating = &flags.myRating
			}
			if cmd.Flags().Changed("owned") {
				input.IsOwned = flags.owned
			}
			if cmd.Flags().Changed("tag") {
				input.Tags = tagInputs(flags.tags)
			}
			if cmd.Flags().Changed("cover") || cmd.Flags().Changed("cover-file") {
				cover, err := flags.resolveCover(cmd)
				if err != nil {
					return err
				}
				input.CoverImage = cover
			}

			if input.Title == "" {
				return model.ErrEmptyGameTitle
			}

			game, err := client.UpdateGame(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(*game)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Remove a game from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(); err != nil {
				return err
			}
			if !yes && !confirm(cmd, "Delete this game and all its sessions?") {
				return nil
			}

			if err := client.DeleteGame(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Game deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

// topGamesLimit caps the landing-page ranking
const topGamesLimit = 6

func newGameTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the hottest games",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := client.TopGames(cmd.Context())
			if err != nil {
				return err
			}
			if len(games) > topGamesLimit {
				games = games[:topGamesLimit]
			}
			NewOutput(cfg.Output).Print(games)
			return nil
		},
	}
}

func tagInputs(titles []string) []model.TagInput {
	out := make([]model.TagInput, 0, len(titles))
	for _, t := range titles {
		out = append(out, model.TagInput{Title: t})
	}
	return out
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	var answer string
	_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
