package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LeJamon/goswtc/internal/config"
	"github.com/LeJamon/goswtc/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configFile string
	envFile    string
	debug      bool
	offline    bool
	secret     string
	sequence   string
	fee        string
	memo       string

	// Set by loadConfig before any command runs
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swtc",
	Short: "swtc - SWTC ledger transaction client",
	Long: `swtc builds, signs and submits transactions to an SWTC ledger node or
REST API, and watches order books on the transaction stream.

Transactions are signed locally unless remote.local_sign is false. With
--offline nothing is sent: the signed blob and its hash are printed.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "conf", "", "configuration file path")
	flags.StringVar(&envFile, "env", "", "dotenv file path (default .env when present)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.BoolVar(&offline, "offline", false, "sign only and print the blob; requires --sequence")
	flags.StringVar(&secret, "secret", "", "account secret used to sign (or SWTC_SECRET)")
	flags.StringVar(&sequence, "sequence", "", "account sequence; resolved from the remote when empty")
	flags.StringVar(&fee, "fee", "", "fee in minor units (default network.fee)")
	flags.StringVar(&memo, "memo", "", "memo text attached before signing")
}

// loadConfig reads the configuration and builds the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(config.ConfigPaths{Main: configFile, Env: envFile})
	if err != nil {
		return err
	}
	if debug {
		c.Log.Level = "debug"
	}

	l, _, err := log.New(log.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
		Outputs:     c.Log.Outputs,
	})
	if err != nil {
		return err
	}

	cfg, logger = c, l
	logger.Debug("configuration loaded",
		zap.String("file", c.GetConfigPath()),
		zap.String("server", c.Remote.Server),
		zap.String("api", c.Remote.API),
		zap.Bool("offline", offline),
	)
	return nil
}
