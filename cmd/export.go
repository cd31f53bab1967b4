package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ethstore/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type recordLister interface {
	GetAllRecords(ctx context.Context) ([]model.Record, error)
}

func newExportCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print every stored record as a JSON array",
		Args:  cobra.NoArgs,
		RunE: databaseCommand(func(cmd *cobra.Command, logger *zap.SugaredLogger, store *storage) error {
			if err := exportRecords(cmd.Context(), out, store.recorder); err != nil {
				logger.Errorw("failed to export records", "error", err)
				return err
			}
			return nil
		}),
	}
}

func exportRecords(ctx context.Context, out io.Writer, records recordLister) error {
	all, err := records.GetAllRecords(ctx)
	if err != nil {
		return fmt.Errorf("export records: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}
