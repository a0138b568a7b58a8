package cmd

import (
	"fmt"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/model"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and seed the fixed roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openGorm(config.LoadConfig())
			if err != nil {
				return err
			}
			if err := model.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables.\n", len(model.AllModels))
			return nil
		},
	}
}
