package domain

import "time"

// OperationType names the operations the builder emits.
type OperationType string

const (
	OperationCreateAccount         OperationType = "create_account"
	OperationPayment               OperationType = "payment"
	OperationPathPaymentStrictSend OperationType = "path_payment_strict_send"
	OperationChangeTrust           OperationType = "change_trust"
	OperationInvokeContract        OperationType = "invoke_contract"
)

// EnvelopeInfo is the decoded summary shared by unsigned and signed envelopes.
type EnvelopeInfo struct {
	Hash              string          `json:"hash"`
	NetworkPassphrase string          `json:"network_passphrase"`
	Source            string          `json:"source"`
	Sequence          int64           `json:"sequence"`
	Fee               int64           `json:"fee"` // stroops, total
	Operations        []OperationType `json:"operations"`
	Memo              string          `json:"memo,omitempty"`
	MinTime           int64           `json:"min_time"`
	MaxTime           int64           `json:"max_time"`
}

// IsExpired reports whether the envelope's upper time bound has passed.
func (e EnvelopeInfo) IsExpired(now time.Time) bool {
	return e.MaxTime != 0 && now.Unix() > e.MaxTime
}

// UnsignedEnvelope is the base64 XDR produced by the builder.
type UnsignedEnvelope struct {
	EnvelopeInfo
	XDR string `json:"xdr"`
}

// SignedEnvelope is an UnsignedEnvelope plus signatures. It is never mutated.
type SignedEnvelope struct {
	EnvelopeInfo
	XDR            string `json:"xdr"`
	SignatureCount int    `json:"signature_count"`
}
