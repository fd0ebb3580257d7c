package domain

// SimulationResult is a contract invocation previewed against current ledger
// state. All XDR fields are base64.
type SimulationResult struct {
	TransactionData string   // SorobanTransactionData: footprint and resources
	MinResourceFee  int64    // stroops
	Auth            []string // SorobanAuthorizationEntry, one per required signer
	LatestLedger    int64
	// Error is the host's failure message when the invocation would fail.
	Error string
}

// Failed reports whether the invocation would fail on chain.
func (r *SimulationResult) Failed() bool {
	return r != nil && r.Error != ""
}
