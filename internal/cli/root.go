// Package cli implements the bgshelf command tree. Each command group is
// the terminal counterpart of one of the web client's pages.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/gateway"
	"github.com/bgshelf/bgshelf/internal/model"
	"github.com/bgshelf/bgshelf/internal/services/auth"
	"github.com/bgshelf/bgshelf/internal/upload"
)

var (
	cfg      *Config
	logger   *slog.Logger
	client   *gateway.Client
	authSvc  *auth.Service
	uploader *upload.Uploader
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "bgshelf",
		Short: "CLI for the board game shelf",
		Long: `bgshelf manages a personal board-game collection through its backend API.

It covers the full collection workflow: adding and editing games, logging
play sessions with participants, attaching reference files, maintaining a
wishlist, and authenticating as the collection owner.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			client = gateway.NewClient(cfg.ServerURL, "", logger)

			store := auth.NewStore(cfg.DataDir)
			svc, err := auth.New(client, store, logger)
			if err != nil {
				return err
			}
			authSvc = svc

			// An explicit token takes precedence over the stored one
			if cfg.Token != "" {
				client.SetToken(cfg.Token)
			}

			uploader = upload.New(cfg.UploadURL, cfg.UploadPreset, logger)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Backend URL (env: BGSHELF_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Bearer token (env: BGSHELF_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory for stored auth state (env: BGSHELF_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.UploadURL, "upload-url", cfg.UploadURL, "Media host upload endpoint (env: BGSHELF_UPLOAD_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.UploadPreset, "upload-preset", cfg.UploadPreset, "Media host upload preset (env: BGSHELF_UPLOAD_PRESET)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newFileCmd())
	rootCmd.AddCommand(newWishlistCmd())
	rootCmd.AddCommand(newUploadCmd())

	return rootCmd
}

// requireAuth gates mutating commands the way the web client gates its
// mutation routes: a stored login or an explicit token is required.
func requireAuth() error {
	if cfg.Token == "" && !authSvc.Authenticated() {
		return model.ErrNotAuthenticated
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
