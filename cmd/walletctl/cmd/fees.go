package cmd

import "github.com/spf13/cobra"

func newFeesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "Show the recommended fee and network congestion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), wallet.Fees.Recommend(cmd.Context()))
		},
	}
}
