package cmd

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/pkg/apperror"

	"github.com/spf13/cobra"
)

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	var req dto.QuoteRequest
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Find the best strict-send path between two assets",
		Example: `  walletctl quote --from native --to USDC:GA5ZSEJYB37JRC5AVCIA5MOP4RHTM335X2KGX3IHOJAPP5RE34K4KZVN --amount 100
  walletctl quote --from native --to USDC:GA5Z... --amount 100 --slippage 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}
			q, err := req.Parse(wallet.Defaults)
			if err != nil {
				return err
			}

			path, err := wallet.Paths.FindPath(cmd.Context(), q.Source, q.Dest, q.Amount, q.Slippage)
			if err != nil {
				return err
			}
			if path == nil {
				return apperror.ErrNoPath()
			}
			return printJSON(cmd.OutOrStdout(), path)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.SourceAsset, "from", "native", "asset to send (native, CODE:ISSUER)")
	f.StringVar(&req.DestAsset, "to", "", "asset to receive")
	f.StringVar(&req.SourceAmount, "amount", "", "amount of the source asset")
	f.StringVar(&req.SlippagePercent, "slippage", "", "slippage tolerance in percent (default from config)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
