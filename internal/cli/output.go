package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LeJamon/goswtc/internal/amount"
	common "github.com/LeJamon/goswtc/internal/crypto/common"
	"github.com/LeJamon/goswtc/internal/protocol"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// txHash returns the transaction id of a signed blob.
func txHash(blob string) (string, error) {
	raw, err := hex.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("invalid blob: %w", err)
	}
	sum := common.Sha512HalfPrefixed(protocol.HashPrefixTransactionID, raw)
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}

// parseAmount reads VALUE[/CURRENCY[/ISSUER]] in display units. A bare
// value is in the base token.
func parseAmount(s string) amount.Amount {
	parts := strings.SplitN(s, "/", 3)
	a := amount.Amount{Value: parts[0], Currency: cfg.Network.Token}
	if len(parts) > 1 {
		a.Currency = strings.ToUpper(parts[1])
	}
	if len(parts) > 2 {
		a.Issuer = parts[2]
	}
	return a
}

// accountSecret returns --secret, or SWTC_SECRET when the flag is unset.
func accountSecret() string {
	if secret != "" {
		return secret
	}
	return os.Getenv("SWTC_SECRET")
}

func txOptions() []tx.Option {
	var opts []tx.Option
	if s := accountSecret(); s != "" {
		opts = append(opts, tx.WithSecret(s))
	}
	if memo != "" {
		opts = append(opts, tx.WithMemo(memo))
	}
	if sequence != "" {
		opts = append(opts, tx.WithSequence(sequence))
	}
	return opts
}

// execute signs or submits t and prints the outcome.
func execute(cmd *cobra.Command, t *tx.Transaction) error {
	if t == nil {
		return fmt.Errorf("unsupported transaction")
	}
	if fee != "" {
		t.SetFee(fee)
	}
	ctx := cmd.Context()
	l := logger.With(zap.String("type", t.TransactionType()), zap.String("account", t.Account()))

	if offline {
		blob, err := t.Sign(ctx, txOptions()...)
		if err != nil {
			return err
		}
		hash, err := txHash(blob)
		if err != nil {
			return err
		}
		l.Debug("signed", zap.String("hash", hash))
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"hash":    hash,
			"tx_blob": blob,
			"tx_json": t.Fields(),
		})
	}

	res, err := t.Submit(ctx, txOptions()...)
	if err != nil {
		return err
	}
	if res == nil {
		res = map[string]any{}
	}
	if t.LocalSigned() {
		if _, ok := res["hash"]; !ok {
			if hash, err := txHash(t.Blob()); err == nil {
				res["hash"] = hash
			}
		}
	}
	l.Info("submitted", zap.Any("engine_result", res["engine_result"]))
	return printJSON(cmd.OutOrStdout(), res)
}
