package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/tessro/coverclock/internal/browser"
	cerrors "github.com/tessro/coverclock/internal/errors"
	"github.com/tessro/coverclock/internal/logging"
	"github.com/tessro/coverclock/internal/spotify/auth"
	"github.com/tessro/coverclock/internal/spotify/client"
)

// loginTimeout bounds how long auth login waits for the browser callback.
const loginTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Spotify authorization",
	Long:  `Commands for obtaining and checking the Spotify refresh token.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize with Spotify",
	Long: `Opens a browser to authorize coverclock using the OAuth PKCE flow and
prints the refresh token to put in the [spotify] section of the config.`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authorization status",
	Long:  `Refreshes the configured token and shows the Spotify account it belongs to.`,
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func requireClientID() error {
	if cfg.Spotify.ClientID == "" {
		return cerrors.WithSuggestion(errors.New("spotify.client_id not configured"),
			"Set it in ~/.coverclockrc or via COVERCLOCK_SPOTIFY_CLIENT_ID")
	}
	return nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	if err := requireClientID(); err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ac := authConfig(cfg)
	ac.RefreshToken = ""
	h := auth.NewHandshake(logger, ac, auth.NewTokenClient(ac, cfg.Timing.Fetch()), clockwork.NewRealClock(), browser.Open)
	defer func() { _ = h.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
	defer cancel()

	if err := h.BeginHandshake(ctx); err != nil {
		return fmt.Errorf("failed to start authorization: %w", err)
	}

	out := cmd.OutOrStdout()
	if !JSONOutput() {
		_, _ = fmt.Fprintf(out, "Open this URL if the browser did not start:\n\n%s\n\nWaiting for authorization...\n", h.AuthURL())
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for !h.IsAuthenticated() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", cerrors.ErrAuthPending, ctx.Err())
		case <-ticker.C:
			h.Pump(ctx)
		}
	}

	token := h.Token()
	displayName := ""
	if user, err := client.New(logger, h, cfg.Timing.Fetch()).GetCurrentUser(ctx); err == nil {
		displayName = user.DisplayName
	}

	if JSONOutput() {
		return json.NewEncoder(out).Encode(map[string]string{
			"status":        "authenticated",
			"display_name":  displayName,
			"refresh_token": token.RefreshToken,
		})
	}

	if displayName != "" {
		_, _ = fmt.Fprintf(out, "Authorized as %s.\n", displayName)
	}
	_, _ = fmt.Fprintf(out, "Add this to the [spotify] section of %s:\n\n  refresh_token = %q\n", configPath(), token.RefreshToken)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if cfg.Spotify.RefreshToken == "" {
		if JSONOutput() {
			return json.NewEncoder(out).Encode(map[string]any{"authenticated": false})
		}
		_, _ = fmt.Fprintln(out, "No refresh token configured.")
		_, _ = fmt.Fprintln(out, "Run 'coverclock auth login' to obtain one.")
		return nil
	}
	if err := requireClientID(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timing.Auth())
	defer cancel()

	ac := authConfig(cfg)
	h := auth.NewHandshake(logger, ac, auth.NewTokenClient(ac, cfg.Timing.Fetch()), clockwork.NewRealClock(), nil)
	if err := h.RefreshAccessToken(ctx); err != nil {
		return cerrors.WithSuggestion(fmt.Errorf("%w: %w", cerrors.ErrUnauthorized, err),
			"The refresh token was rejected. Run 'coverclock auth login' again")
	}

	user, err := client.New(logger, h, cfg.Timing.Fetch()).GetCurrentUser(ctx)
	if err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(out).Encode(map[string]any{
			"authenticated": true,
			"user_id":       user.ID,
			"display_name":  user.DisplayName,
			"product":       user.Product,
			"expires_at":    h.Token().ExpiresAt,
		})
	}

	_, _ = fmt.Fprintf(out, "Authorized as: %s\n", user.DisplayName)
	_, _ = fmt.Fprintf(out, "Account type: %s\n", user.Product)
	_, _ = fmt.Fprintf(out, "Token expires: %s\n", h.Token().ExpiresAt.Format(time.RFC3339))
	return nil
}
