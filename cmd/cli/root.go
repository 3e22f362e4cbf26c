package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"recipehub/cmd/config"
	"recipehub/internal/utils"
)

type rootOptions struct {
	configPath string
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "recipehub",
		Short: "RecipeHub - recipe sharing API",
		Long: `RecipeHub serves the recipe sharing REST API and carries the
operational commands that go with it: schema migration, tag seeding
and refresh token cleanup.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", utils.DefaultConfigPath, "config file")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newSeedCommand(opts))
	rootCmd.AddCommand(newSweepTokensCommand(opts))
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the config file; requireSecret rejects a config that
// cannot sign tokens.
func (o *rootOptions) loadConfig(requireSecret bool) (*utils.Config, error) {
	cfg, err := utils.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if requireSecret {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (o *rootOptions) connect(requireSecret bool) (*utils.Config, *gorm.DB, error) {
	cfg, err := o.loadConfig(requireSecret)
	if err != nil {
		return nil, nil, err
	}
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
