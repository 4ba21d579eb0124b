package cli

import (
	"github.com/LeJamon/goswtc/internal/orderbook"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Order book commands",
}

var booksWatchCmd = &cobra.Command{
	Use:   "watch <key>...",
	Short: "Stream transactions affecting order books",
	Long: `Print every transaction that touches one of the books until interrupted.
Keys are GETS:PAYS, each side CURRENCY/ISSUER or the base token, e.g.
SWT:CNY/jGa9J9TkqtBcUoHe2zqhVFFbgUVED6o9or.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openNode(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		book := orderbook.New(s.ws,
			orderbook.WithToken(cfg.Network.Token),
			orderbook.WithLogger(logger),
		)
		defer book.Close()

		events := make(chan *orderbook.Event, 64)
		for _, key := range args {
			if err := book.Subscribe(key, func(e *orderbook.Event) {
				select {
				case events <- e:
				default:
					logger.Warn("dropping book event, output is behind")
				}
			}); err != nil {
				return err
			}
		}
		if err := s.ws.SubscribeTransactions(ctx); err != nil {
			return err
		}
		logger.Info("watching books", zap.Strings("keys", args))

		lost := s.ws.Done()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-lost:
				return errConnectionLost
			case e := <-events:
				if err := printJSON(cmd.OutOrStdout(), e); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.AddCommand(booksWatchCmd)
}
