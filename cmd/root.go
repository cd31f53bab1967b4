package cmd

import (
	"fmt"
	"io"
	"os"

	"ethstore/internal/config"
	"ethstore/internal/core"
	"ethstore/internal/db"
	"ethstore/internal/repository"
	"ethstore/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "ethstore"

func NewRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Store Ethereum-typed records in PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newExportCommand(out))
	cmd.AddCommand(newUpsertCommand(out))
	return cmd
}

func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

type storage struct {
	db       *db.GormDB
	repo     *repository.RecordRepository
	recorder *core.Recorder
}

func (s *storage) Close() error {
	return s.db.Close()
}

func openStorage(cfg config.Database, logger *zap.SugaredLogger) (*storage, error) {
	gormLevel := gormlogger.Warn
	if log.ParseLevel(cfg.LogLevel) == zapcore.DebugLevel {
		gormLevel = gormlogger.Info
	}

	dbConn, err := db.NewGormDB(cfg.ConnectionURL, gormLevel)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := repository.NewRecordRepository(dbConn)
	return &storage{
		db:       dbConn,
		repo:     repo,
		recorder: core.NewRecorder(logger, repo),
	}, nil
}

// databaseCommand loads the database config and logger, opens storage and hands
// it to run, closing it afterwards.
func databaseCommand(run func(cmd *cobra.Command, logger *zap.SugaredLogger, store *storage) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewDatabase()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
		defer logger.Sync()

		store, err := openStorage(cfg, logger)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}
		defer store.Close()

		return run(cmd, logger, store)
	}
}
