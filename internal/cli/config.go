package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tessro/coverclock/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and creating the coverclock configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after defaults and environment overrides.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	}

	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if err := writeDefaultConfig(afero.NewOsFs(), path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return json.NewEncoder(out).Encode(map[string]string{
			"status": "created",
			"path":   path,
		})
	}

	_, _ = fmt.Fprintf(out, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Set your Spotify client ID in the config file or via COVERCLOCK_SPOTIFY_CLIENT_ID")
	_, _ = fmt.Fprintln(out, "  2. Run 'coverclock auth login' and add the printed refresh token")
	return nil
}

// writeDefaultConfig creates path with the default configuration. An
// existing file is never overwritten.
func writeDefaultConfig(fs afero.Fs, path string) error {
	if _, err := fs.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# Coverclock configuration")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.Path()
}
