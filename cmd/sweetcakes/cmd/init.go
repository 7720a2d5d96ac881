package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/sweetcakes/internal/config"
	apperrors "github.com/wexinc/sweetcakes/internal/errors"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Create a sweetcakes configuration file",
		Long: `Create a sweetcakes configuration file.

This command writes .sweetcakes/config.yaml (or the file named by
--config) with the default settings:
  - storage   cart storage driver (file, sqlite, memory), path and key
  - catalog   optional path to a custom YAML catalog
  - log       log level and log directory
  - shop      currency symbol and delivery fee

Use --force to overwrite an existing configuration.

Examples:
  sweetcakes init          # Create .sweetcakes/config.yaml
  sweetcakes init --force  # Overwrite the existing config`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	return c
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return apperrors.WithSuggestion(apperrors.ErrConfig,
			"configuration already exists: "+path,
			"Use 'sweetcakes init --force' to overwrite it.")
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfig, "failed to write configuration")
	}

	cmd.Println("Created " + path)
	cmd.Println("")
	cmd.Println("Sweet Cakes initialized successfully!")
	cmd.Printf("Edit %s to configure your shop.\n", path)
	cmd.Println("Run 'sweetcakes shop' to start shopping.")
	return nil
}
