package cli

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/radarchunk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/services"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage radarchunk settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	// Existing settings are not validated; --force replaces an invalid file.
	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsSvc := services.NewSettingsService(configStore)

	if _, err := settingsSvc.Init(configForce); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", settingsSvc.Path())
		}
		return fmt.Errorf("failed to write config: %w", err)
	}

	cmd.Printf("Wrote default settings to %s\n", settingsSvc.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(a.settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	cmd.Printf("# %s\n", a.settingsSvc.Path())
	cmd.Print(string(data))
	return nil
}
