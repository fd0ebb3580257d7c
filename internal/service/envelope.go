package service

import (
	"errors"
	"fmt"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/apperror"

	"github.com/stellar/go/txnbuild"
)

var errUnsupportedFeeBump = errors.New("fee bump envelopes are not supported")

// describeEnvelope summarizes tx for callers that never decode XDR themselves.
func describeEnvelope(tx *txnbuild.Transaction, passphrase string) (domain.EnvelopeInfo, error) {
	hash, err := tx.HashHex(passphrase)
	if err != nil {
		return domain.EnvelopeInfo{}, fmt.Errorf("hashing transaction: %w", err)
	}

	ops := make([]domain.OperationType, 0, len(tx.Operations()))
	for _, op := range tx.Operations() {
		ops = append(ops, operationType(op))
	}

	var memo string
	if text, ok := tx.Memo().(txnbuild.MemoText); ok {
		memo = string(text)
	}

	bounds := tx.Timebounds()
	return domain.EnvelopeInfo{
		Hash:              hash,
		NetworkPassphrase: passphrase,
		Source:            tx.SourceAccount().AccountID,
		Sequence:          tx.SequenceNumber(),
		Fee:               tx.MaxFee(),
		Operations:        ops,
		Memo:              memo,
		MinTime:           bounds.MinTime,
		MaxTime:           bounds.MaxTime,
	}, nil
}

func operationType(op txnbuild.Operation) domain.OperationType {
	switch op.(type) {
	case *txnbuild.CreateAccount:
		return domain.OperationCreateAccount
	case *txnbuild.Payment:
		return domain.OperationPayment
	case *txnbuild.PathPaymentStrictSend:
		return domain.OperationPathPaymentStrictSend
	case *txnbuild.ChangeTrust:
		return domain.OperationChangeTrust
	case *txnbuild.InvokeHostFunction:
		return domain.OperationInvokeContract
	}
	return domain.OperationType(fmt.Sprintf("%T", op))
}

// classicAsset converts a native or issued asset to its txnbuild form.
func classicAsset(a domain.Asset) (txnbuild.Asset, bool) {
	switch a.Kind {
	case domain.AssetKindNative:
		return txnbuild.NativeAsset{}, true
	case domain.AssetKindIssued:
		return txnbuild.CreditAsset{Code: a.Code, Issuer: a.Issuer}, true
	}
	return nil, false
}

// DecodeEnvelope parses externally supplied XDR, signed or not, into a
// SignedEnvelope whose hash is computed under passphrase. It is the entry
// point for envelopes that did not come from the builder.
func DecodeEnvelope(envelopeXDR, passphrase string) (*domain.SignedEnvelope, error) {
	if envelopeXDR == "" {
		return nil, apperror.ErrMalformedEnvelope(errors.New("empty envelope"))
	}
	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return nil, apperror.ErrMalformedEnvelope(errUnsupportedFeeBump)
	}
	info, err := describeEnvelope(tx, passphrase)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	return &domain.SignedEnvelope{
		EnvelopeInfo:   info,
		XDR:            envelopeXDR,
		SignatureCount: len(tx.Signatures()),
	}, nil
}
