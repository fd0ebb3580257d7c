package service

import (
	"context"
	"fmt"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stellar/go/txnbuild"
)

// SignerService implements ports.Signer and ports.SigningService.
type SignerService struct {
	keystore ports.KeyStore
	audit    ports.AuditService
	log      zerolog.Logger
}

// NewSignerService creates a new SignerService. keystore is only needed for UnlockAndSign.
func NewSignerService(keystore ports.KeyStore, audit ports.AuditService, log zerolog.Logger) *SignerService {
	return &SignerService{
		keystore: keystore,
		audit:    audit,
		log:      logger.WithComponent(log, "signer"),
	}
}

// Sign re-parses the envelope, signs it under its network passphrase and
// returns a new envelope. The key is not retained.
func (s *SignerService) Sign(env *domain.UnsignedEnvelope, key *domain.KeyMaterial) (*domain.SignedEnvelope, error) {
	if env == nil || env.XDR == "" {
		return nil, apperror.ErrMalformedEnvelope(fmt.Errorf("empty envelope"))
	}
	if env.NetworkPassphrase == "" {
		return nil, apperror.ErrMalformedEnvelope(fmt.Errorf("missing network passphrase"))
	}

	generic, err := txnbuild.TransactionFromXDR(env.XDR)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return nil, apperror.ErrMalformedEnvelope(errUnsupportedFeeBump)
	}

	info, err := describeEnvelope(tx, env.NetworkPassphrase)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	if env.Hash != "" && env.Hash != info.Hash {
		return nil, apperror.ErrMalformedEnvelope(fmt.Errorf("envelope hash does not match its XDR"))
	}

	kp, err := key.Keypair()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("using key: %w", err))
	}

	signed, err := tx.Sign(env.NetworkPassphrase, kp)
	if err != nil {
		return nil, apperror.ErrMalformedEnvelope(err)
	}
	encoded, err := signed.Base64()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding signed envelope: %w", err))
	}

	return &domain.SignedEnvelope{
		EnvelopeInfo:   info,
		XDR:            encoded,
		SignatureCount: len(signed.Signatures()),
	}, nil
}

// UnlockAndSign unlocks keyID for exactly one signature.
func (s *SignerService) UnlockAndSign(ctx context.Context, keyID, credential string, env *domain.UnsignedEnvelope) (*domain.SignedEnvelope, error) {
	var signed *domain.SignedEnvelope
	err := s.keystore.WithKey(ctx, keyID, credential, func(key *domain.KeyMaterial) error {
		var err error
		signed, err = s.Sign(env, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("key_id", keyID).
		Str("source", logger.ShortAddress(signed.Source)).
		Str("hash", signed.Hash).
		Msg("transaction signed")
	if s.audit != nil {
		s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionTxSigned, "transaction", signed.Hash, signed.Source))
	}
	return signed, nil
}
