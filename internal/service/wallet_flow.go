package service

import (
	"context"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
)

// DefaultLockTTL outlives the default envelope timeout.
const DefaultLockTTL = 5 * time.Minute

// lockMargin covers the final status lookup after an envelope expires.
const lockMargin = time.Minute

// WalletFlowService implements ports.WalletFlow: one account, one
// build-to-submit flow at a time.
type WalletFlowService struct {
	locker    ports.AccountLocker
	builder   ports.TransactionBuilder
	security  ports.SecurityService
	signer    ports.SigningService
	submitter ports.Submitter
	audit     ports.AuditService
	lockTTL   time.Duration
	log       zerolog.Logger
}

// NewWalletFlowService creates a new WalletFlowService. locker and audit may be nil.
func NewWalletFlowService(
	locker ports.AccountLocker,
	builder ports.TransactionBuilder,
	security ports.SecurityService,
	signer ports.SigningService,
	submitter ports.Submitter,
	audit ports.AuditService,
	lockTTL time.Duration,
	log zerolog.Logger,
) *WalletFlowService {
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	return &WalletFlowService{
		locker:    locker,
		builder:   builder,
		security:  security,
		signer:    signer,
		submitter: submitter,
		audit:     audit,
		lockTTL:   lockTTL,
		log:       logger.WithComponent(log, "flow"),
	}
}

// Send locks the source account, builds, assesses, signs and submits.
func (s *WalletFlowService) Send(ctx context.Context, req ports.SendRequest) (*ports.SendResult, error) {
	source, err := validateSource(req.Intent.Source)
	if err != nil {
		return nil, err
	}

	release, err := s.lock(ctx, source, s.lockTTLFor(req.Intent.TimeoutSeconds))
	if err != nil {
		return nil, err
	}
	defer release()

	unsigned, err := s.builder.Build(ctx, req.Intent)
	if err != nil {
		return nil, err
	}

	assessment, err := s.security.AssessTransaction(ctx, ports.TransactionCheck{
		EnvelopeXDR: unsigned.XDR,
		SiteURL:     req.SiteURL,
		Destination: req.Intent.Destination,
		Memo:        req.Intent.Memo,
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkGate(ctx, req, source, unsigned.Hash, assessment.Gate); err != nil {
		return nil, err
	}

	signed, err := s.signer.UnlockAndSign(ctx, req.KeyID, req.Credential, unsigned)
	if err != nil {
		return nil, err
	}

	result, err := s.submitter.Submit(ctx, signed)
	if err != nil {
		return nil, err
	}

	return &ports.SendResult{Submission: result, Assessment: assessment, Envelope: signed}, nil
}

// lockTTLFor keeps the lock held until the envelope can no longer land, so
// a second flow never builds on the same sequence number while a long
// timeout is still being retried.
func (s *WalletFlowService) lockTTLFor(timeoutSeconds int64) time.Duration {
	return max(s.lockTTL, time.Duration(timeoutSeconds)*time.Second+lockMargin)
}

// lock returns a release func. An unavailable lock store is logged and the
// flow continues unserialized; contention is AccountBusy.
func (s *WalletFlowService) lock(ctx context.Context, address string, ttl time.Duration) (func(), error) {
	noop := func() {}
	if s.locker == nil {
		return noop, nil
	}

	token, ok, err := s.locker.Acquire(ctx, address, ttl)
	if err != nil {
		s.log.Warn().Err(err).Str("source", logger.ShortAddress(address)).Msg("account lock unavailable, continuing without it")
		return noop, nil
	}
	if !ok {
		return nil, apperror.ErrAccountBusy()
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), address, token); err != nil {
			s.log.Warn().Err(err).Str("source", logger.ShortAddress(address)).Msg("failed to release account lock")
		}
	}, nil
}

func (s *WalletFlowService) checkGate(ctx context.Context, req ports.SendRequest, source, hash string, gate domain.GateDecision) error {
	if !gate.Gated {
		return nil
	}
	if !gate.Overridable {
		s.log.Warn().Str("hash", hash).Str("reason", string(gate.Reason)).Msg("send blocked by security gate")
		return apperror.ErrBlocked(string(gate.Reason))
	}
	if !req.OverrideWarnings {
		return apperror.ErrConfirmationRequired(string(gate.Reason))
	}

	s.log.Warn().Str("hash", hash).Str("reason", string(gate.Reason)).Msg("security warning overridden by user")
	if s.audit != nil {
		entry := domain.NewAuditLog(domain.AuditActionSecurityOverride, "transaction", hash, source)
		entry.IPAddress = req.ClientIP
		entry.Details = `{"reason":"` + string(gate.Reason) + `","level":"` + string(gate.Level) + `"}`
		s.audit.Log(ctx, entry)
	}
	return nil
}
