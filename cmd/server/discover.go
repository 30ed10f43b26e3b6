package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/middleware"
	"github.com/anonto42/travel-discover/backend/pkg/config"
	"github.com/spf13/cobra"
)

func discoverCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "discover [location]",
		Short: "Print the discovery result for a location as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.Close()

			view, err := rt.app.Explorer.Search(cmd.Context(), userID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "record the search and mark saved places for this user id")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		email string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token [user-id]",
		Short: "Mint a JWT for local testing of the /api/v1 routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			tok, err := middleware.SignToken(cfg.JWTSecret, args[0], email, ttl)
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
