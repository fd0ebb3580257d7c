package cmd

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/ports"

	"github.com/spf13/cobra"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	var (
		req      dto.PaymentRequest
		keyID    string
		siteURL  string
		override bool
		decimals int
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build, check, sign and submit a payment",
		Long: `Send locks the source account, builds the payment, runs the security
checks, signs with the stored key and submits until the network returns a
definitive result. Suspicious results stop the send unless --override is given;
malicious sites and missing required memos always stop it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("decimals") {
				req.Decimals = &decimals
			}
			intent, err := req.ToIntent(wallet.Defaults)
			if err != nil {
				return err
			}
			passcode, err := opts.promptSecret(cmd, "Passcode")
			if err != nil {
				return err
			}

			result, err := wallet.Flow.Send(cmd.Context(), ports.SendRequest{
				Intent:           intent,
				KeyID:            keyID,
				Credential:       passcode,
				SiteURL:          siteURL,
				OverrideWarnings: override,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	f := cmd.Flags()
	f.StringVar(&keyID, "key", "", "id of the stored signing key")
	f.StringVar(&req.Source, "source", "", "source account address")
	f.StringVar(&req.Destination, "to", "", "destination address (G..., M... or C...)")
	f.StringVar(&req.Asset, "asset", "", "asset to send (default native)")
	f.IntVar(&decimals, "decimals", 7, "decimals of a contract token asset")
	f.StringVar(&req.Amount, "amount", "", "amount to send")
	f.StringVar(&req.Memo, "memo", "", "text memo")
	f.StringVar(&req.Fee, "fee", "", "fee in XLM (default from config)")
	f.Int64Var(&req.TimeoutSeconds, "timeout", 0, "envelope validity in seconds (default from config)")
	f.StringVar(&siteURL, "site", "", "origin of the request, scanned before signing")
	f.BoolVar(&override, "override", false, "proceed despite overridable warnings")
	for _, name := range []string{"key", "source", "to", "amount"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
