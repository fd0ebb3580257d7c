// Package cmd implements walletctl, a local wallet CLI that runs the same
// services as the API against the file keychain.
package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stellar-wallet-core/config"
	"stellar-wallet-core/internal/app"
	"stellar-wallet-core/pkg/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	stdin      *bufio.Reader
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "walletctl",
		Short:         "Stellar wallet command line tool",
		Long:          "Manage keys, quote swaps, check fees and send payments with the wallet core services.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")

	root.AddCommand(
		newKeysCmd(opts),
		newQuoteCmd(opts),
		newSendCmd(opts),
		newFeesCmd(opts),
		newPasscodeCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels the running command; a cancelled send reports its status as unknown.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadWallet wires services without a database or Redis. Logs go to stderr
// so stdout stays machine readable.
func (o *rootOptions) loadWallet(cmd *cobra.Command) (*app.Wallet, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Keystore.Backend = app.BackendFile
	log := logger.NewWithWriter(cfg.Log.Level, cmd.ErrOrStderr())
	return app.New(cfg, app.Infra{}, log)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
