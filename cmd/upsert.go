package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"ethstore/internal/model"
	"ethstore/pkg/primitives"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type upsertFlags struct {
	address         string
	u256            string
	blockNumber     int64
	txHash          string
	optionalAddress string
	optionalU256    string
}

func newUpsertCommand(out io.Writer) *cobra.Command {
	var flags upsertFlags

	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Insert a record or replace the one with the same address and u256",
		Example: "  ethstore upsert --address 0x92be2f02c94d214f8d38ece700385471d9a66c0a \\\n" +
			"    --u256 9999999999999999999999999999999999999999999999 --block-number 1 \\\n" +
			"    --tx-hash 0xb44c4e99de65f6a5f4a2162a76241cf858c09ff218f3023a3ac03acc17fea885",
		Args: cobra.NoArgs,
		RunE: databaseCommand(func(cmd *cobra.Command, logger *zap.SugaredLogger, store *storage) error {
			record, err := flags.record()
			if err != nil {
				return err
			}

			affected, err := store.recorder.SaveRecord(cmd.Context(), record)
			if err != nil {
				logger.Errorw("failed to upsert record", "error", err)
				return err
			}

			return json.NewEncoder(out).Encode(map[string]int64{"affected": affected})
		}),
	}

	cmd.Flags().StringVar(&flags.address, "address", "", "record address, 0x-prefixed hex (EIP-55 checked when mixed case)")
	cmd.Flags().StringVar(&flags.u256, "u256", "", "unsigned 256-bit amount in base 10")
	cmd.Flags().Int64Var(&flags.blockNumber, "block-number", 0, "block number")
	cmd.Flags().StringVar(&flags.txHash, "tx-hash", "", "transaction hash, 0x-prefixed hex")
	cmd.Flags().StringVar(&flags.optionalAddress, "optional-address", "", "optional second address")
	cmd.Flags().StringVar(&flags.optionalU256, "optional-u256", "", "optional second amount")
	for _, name := range []string{"address", "u256", "block-number", "tx-hash"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	return cmd
}

// record converts the flags to a record. Empty optional flags leave the field absent.
func (f upsertFlags) record() (model.Record, error) {
	address, err := primitives.ParseChecksummedAddress(f.address)
	if err != nil {
		return model.Record{}, fmt.Errorf("flag --address: %w", err)
	}

	amount, err := primitives.ParseUint256(f.u256)
	if err != nil {
		return model.Record{}, fmt.Errorf("flag --u256: %w", err)
	}

	txHash, err := primitives.HexToBytes32(f.txHash)
	if err != nil {
		return model.Record{}, fmt.Errorf("flag --tx-hash: %w", err)
	}

	record := model.Record{
		Address:     address,
		U256:        amount,
		BlockNumber: f.blockNumber,
		TxHash:      txHash,
	}

	if f.optionalAddress != "" {
		optAddress, err := primitives.ParseChecksummedAddress(f.optionalAddress)
		if err != nil {
			return model.Record{}, fmt.Errorf("flag --optional-address: %w", err)
		}
		record.OptionalAddress = &optAddress
	}

	if f.optionalU256 != "" {
		optAmount, err := primitives.ParseUint256(f.optionalU256)
		if err != nil {
			return model.Record{}, fmt.Errorf("flag --optional-u256: %w", err)
		}
		record.OptionalU256 = &optAmount
	}

	return record, nil
}
