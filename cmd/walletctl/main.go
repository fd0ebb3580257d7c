package main

import "stellar-wallet-core/cmd/walletctl/cmd"

func main() {
	cmd.Execute()
}
