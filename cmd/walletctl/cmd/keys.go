package cmd

import (
	"errors"

	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/domain"

	"github.com/spf13/cobra"
)

func newKeysCmd(opts *rootOptions) *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Manage keys in the secure key store",
	}
	keys.AddCommand(newKeysAddCmd(opts), newKeysRemoveCmd(opts), newKeysExistsCmd(opts))
	return keys
}

func newKeysAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <key-id>",
		Short: "Import a secret seed, sealed with the device passcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}

			secret, err := opts.promptSecret(cmd, "Secret seed")
			if err != nil {
				return err
			}
			key, err := domain.KeyMaterialFromSecret(secret)
			if err != nil {
				return errors.New("not a valid Stellar secret seed")
			}
			defer key.Wipe()
			address, err := key.Address()
			if err != nil {
				return err
			}

			passcode, err := opts.promptSecret(cmd, "Passcode")
			if err != nil {
				return err
			}
			if err := wallet.Keys.Store(cmd.Context(), args[0], key, passcode); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.KeyResponse{KeyID: args[0], Address: address, Exists: true})
		},
	}
}

func newKeysRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key-id>",
		Short: "Delete a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}
			if err := wallet.Keys.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.KeyResponse{KeyID: args[0], Exists: false})
		},
	}
}

func newKeysExistsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <key-id>",
		Short: "Report whether a key is stored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := opts.loadWallet(cmd)
			if err != nil {
				return err
			}
			ok, err := wallet.Keys.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.KeyResponse{KeyID: args[0], Exists: ok})
		},
	}
}
