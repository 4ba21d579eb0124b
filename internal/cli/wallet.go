package cli

import (
	"github.com/LeJamon/goswtc/internal/crypto/keypair"
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Wallet commands",
}

var walletNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := keypair.Generate()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"address":    kp.Address(),
			"secret":     kp.Secret(),
			"public_key": kp.PublicKey(),
		})
	},
}

var walletShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the address of --secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		kp, err := keypair.FromSecret(accountSecret())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"address":    kp.Address(),
			"public_key": kp.PublicKey(),
		})
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.AddCommand(walletNewCmd, walletShowCmd)
}
