package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the records table",
		Args:  cobra.NoArgs,
		RunE: databaseCommand(func(cmd *cobra.Command, logger *zap.SugaredLogger, store *storage) error {
			if err := store.repo.Migrate(cmd.Context()); err != nil {
				logger.Errorw("failed to migrate tables to database", "error", err)
				return err
			}
			logger.Infow("records table migrated")
			return nil
		}),
	}
}
