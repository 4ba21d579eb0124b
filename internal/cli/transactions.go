package cli

import (
	"fmt"

	"github.com/LeJamon/goswtc/internal/remote"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Transaction flags
	pathfind    bool
	sendMax     string
	txFlags     []string
	app         string
	target      string
	qualityIn   uint32
	qualityOut  uint32
	setFlag     string
	clearFlag   string
	delegateKey string
	rate        float64
)

// withSession opens the remote, builds the transaction and runs it.
func withSession(build func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		t, err := build(cmd, s, args)
		if err != nil {
			return err
		}
		return execute(cmd, t)
	}
}

// =============================================================================
// PAYMENTS AND OFFERS
// =============================================================================

var payCmd = &cobra.Command{
	Use:   "pay <source> <destination> <amount>",
	Short: "Send a payment",
	Long: `Send a payment. Amounts are VALUE for the base token or
VALUE/CURRENCY/ISSUER, in display units.`,
	Args: cobra.ExactArgs(3),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		amt := parseAmount(args[2])
		t := tx.BuildPaymentTx(tx.PaymentOptions{
			Source:      args[0],
			Destination: args[1],
			Amount:      amt,
		}, s.client)
		if len(txFlags) > 0 {
			t.SetFlags(txFlags...)
		}
		if sendMax != "" {
			if err := t.SetSendMax(parseAmount(sendMax)); err != nil {
				return nil, err
			}
		}
		if !pathfind {
			return t, nil
		}
		if s.ws == nil {
			return nil, errNeedsNode
		}
		options, err := s.ws.FindPath(cmd.Context(), remote.PathRequest{
			Source:      args[0],
			Destination: args[1],
			Amount:      amt,
		})
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			return nil, fmt.Errorf("no path from %s to %s", args[0], args[1])
		}
		logger.Debug("using path", zap.String("key", options[0].Key), zap.Int("alternatives", len(options)))
		if err := t.SetPath(options[0].Key); err != nil {
			return nil, err
		}
		return t, nil
	}),
}

var offerCmd = &cobra.Command{
	Use:   "offer <Sell|Buy> <source> <taker_gets> <taker_pays>",
	Short: "Place an offer",
	Args:  cobra.ExactArgs(4),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		t := tx.BuildOfferCreateTx(tx.OfferCreateOptions{
			Type:      args[0],
			Source:    args[1],
			TakerGets: parseAmount(args[2]),
			TakerPays: parseAmount(args[3]),
			App:       app,
		}, s.client)
		if len(txFlags) > 0 {
			t.SetFlags(txFlags...)
		}
		return t, nil
	}),
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <source> <offer_sequence>",
	Short: "Cancel an offer",
	Args:  cobra.ExactArgs(2),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.BuildOfferCancelTx(tx.OfferCancelOptions{Source: args[0], Sequence: args[1]}, s.client), nil
	}),
}

// =============================================================================
// ACCOUNT COMMANDS
// =============================================================================

var relationCmd = &cobra.Command{
	Use:   "relation <trust|authorize|freeze|unfreeze> <source> <limit>",
	Short: "Set a trust line or an authorize/freeze relation",
	Long: `Set a trust line to the issuer of limit, or an authorize/freeze relation
with --target. The limit is VALUE/CURRENCY/ISSUER.`,
	Args: cobra.ExactArgs(3),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.BuildRelationTx(tx.RelationOptions{
			Type:       args[0],
			Source:     args[1],
			Target:     target,
			Limit:      parseAmount(args[2]),
			QualityIn:  qualityIn,
			QualityOut: qualityOut,
		}, s.client), nil
	}),
}

var accountSetCmd = &cobra.Command{
	Use:   "accountset <property|delegate> <source>",
	Short: "Set account properties or the regular key",
	Args:  cobra.ExactArgs(2),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		t := tx.BuildAccountSetTx(tx.AccountSetOptions{
			Type:        args[0],
			Source:      args[1],
			SetFlag:     setFlag,
			ClearFlag:   clearFlag,
			DelegateKey: delegateKey,
		}, s.client)
		if t == nil {
			return nil, fmt.Errorf("account set type %q is not supported", args[0])
		}
		if cmd.Flags().Changed("transfer-rate") {
			if err := t.SetTransferRate(rate); err != nil {
				return nil, err
			}
		}
		return t, nil
	}),
}

var brokerageCmd = &cobra.Command{
	Use:   "brokerage <account> <mol> <den> <fee_currency>",
	Short: "Set the brokerage fee rate of an application",
	Long: `Set the fee rate mol/den charged on offers of an application. The
fee currency is CURRENCY/ISSUER or the base token.`,
	Args: cobra.ExactArgs(4),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.BuildBrokerageTx(tx.BrokerageOptions{
			Account: args[0],
			Mol:     args[1],
			Den:     args[2],
			App:     app,
			Amount:  parseAmount("0/" + args[3]),
		}, s.client), nil
	}),
}

var submitBlobCmd = &cobra.Command{
	Use:   "submit-blob <blob>",
	Short: "Submit a transaction signed elsewhere",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.BuildSignTx(args[0], s.client), nil
	}),
}

// =============================================================================
// CONTRACTS
// =============================================================================

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Deploy and call contracts",
}

var contractDeployCmd = &cobra.Command{
	Use:   "deploy <account> <amount> <payload> [params...]",
	Short: "Deploy a contract",
	Args:  cobra.MinimumNArgs(3),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.DeployContractTx(tx.DeployContractOptions{
			Account: args[0],
			Amount:  args[1],
			Payload: args[2],
			Params:  stringParams(args[3:]),
		}, s.client), nil
	}),
}

var contractCallCmd = &cobra.Command{
	Use:   "call <account> <contract> <function> [params...]",
	Short: "Call a contract function",
	Args:  cobra.MinimumNArgs(3),
	RunE: withSession(func(cmd *cobra.Command, s *session, args []string) (*tx.Transaction, error) {
		return tx.CallContractTx(tx.CallContractOptions{
			Account:     args[0],
			Destination: args[1],
			Foo:         args[2],
			Params:      stringParams(args[3:]),
		}, s.client), nil
	}),
}

func stringParams(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func init() {
	rootCmd.AddCommand(payCmd, offerCmd, cancelCmd, relationCmd, accountSetCmd, brokerageCmd, submitBlobCmd, contractCmd)
	contractCmd.AddCommand(contractDeployCmd, contractCallCmd)

	payCmd.Flags().BoolVar(&pathfind, "pathfind", false, "find a path and pay through the first alternative")
	payCmd.Flags().StringVar(&sendMax, "send-max", "", "most the payment may spend")
	payCmd.Flags().StringSliceVar(&txFlags, "flags", nil, "transaction flags, e.g. PartialPayment")

	offerCmd.Flags().StringVar(&app, "app", "", "application id")
	offerCmd.Flags().StringSliceVar(&txFlags, "flags", nil, "transaction flags, e.g. Passive")

	relationCmd.Flags().StringVar(&target, "target", "", "counterparty of an authorize/freeze relation")
	relationCmd.Flags().Uint32Var(&qualityIn, "quality-in", 0, "trust line quality in")
	relationCmd.Flags().Uint32Var(&qualityOut, "quality-out", 0, "trust line quality out")

	accountSetCmd.Flags().StringVar(&setFlag, "set-flag", "", "flag to set, e.g. RequireDest")
	accountSetCmd.Flags().StringVar(&clearFlag, "clear-flag", "", "flag to clear")
	accountSetCmd.Flags().StringVar(&delegateKey, "delegate-key", "", "regular key address")
	accountSetCmd.Flags().Float64Var(&rate, "transfer-rate", 0, "transfer fee as a fraction between 0 and 1")

	brokerageCmd.Flags().StringVar(&app, "app", "", "application id")
}
