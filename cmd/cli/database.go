package cli

import (
	"github.com/spf13/cobra"
	"recipehub/cmd/config"
	migration "recipehub/cmd/database/migrate"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			return migration.Migrate(db)
		},
	}
}

func newSeedCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			inserted, err := config.NewServices(cfg, db, nil).Tag.SeedDefaultTags(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "seeded %d tags\n", inserted)
			return nil
		},
	}
}

func newSweepTokensCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-tokens",
		Short: "Delete expired refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := opts.connect(false)
			if err != nil {
				return err
			}
			defer closeDB(db)

			removed, err := config.NewServices(cfg, db, nil).User.SweepExpiredTokens(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "removed %d expired refresh tokens\n", removed)
			return nil
		},
	}
}
