package cmd

import (
	"errors"
	"fmt"

	"stellar-wallet-core/internal/service"

	"github.com/spf13/cobra"
)

const minPasscodeLength = 6

func newPasscodeCmd(opts *rootOptions) *cobra.Command {
	passcode := &cobra.Command{
		Use:   "passcode",
		Short: "Device passcode utilities",
	}
	passcode.AddCommand(&cobra.Command{
		Use:   "hash",
		Short: "Hash a new device passcode for keystore.passcode_hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			first, err := opts.promptSecret(cmd, "New passcode")
			if err != nil {
				return err
			}
			if len(first) < minPasscodeLength {
				return fmt.Errorf("passcode must be at least %d characters", minPasscodeLength)
			}
			second, err := opts.promptSecret(cmd, "Repeat passcode")
			if err != nil {
				return err
			}
			if first != second {
				return errors.New("passcodes do not match")
			}

			hash, err := service.HashPasscode(first)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	})
	return passcode
}
