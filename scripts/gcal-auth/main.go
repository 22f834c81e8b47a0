// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access and write the
// OAuth token the API server reads from google_calendar.token_path.
//
// Usage:
//   go run scripts/gcal-auth/main.go --credentials google-credentials.json --token token.json

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"schedule-assistant/pkg/gcalendar"
)

func main() {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save an OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return authorize(cmd.Context(), credsPath, tokenPath)
		},
	}
	cmd.Flags().StringVarP(&credsPath, "credentials", "c", "google-credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVarP(&tokenPath, "token", "t", gcalendar.DefaultTokenPath, "where to write the token")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func authorize(ctx context.Context, credsPath, tokenPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("failed to parse credentials (is %q an OAuth Desktop App file?): %w", credsPath, err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Restart the API server to enable Google Calendar.\n", tokenPath)
	return nil
}
