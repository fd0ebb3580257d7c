package service

import (
	"context"
	"errors"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"
	"stellar-wallet-core/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultRetryInterval = 5 * time.Second
	DefaultResultTTL     = 24 * time.Hour

	// bounds the single status poll made after the caller cancels
	statusPollTimeout = 10 * time.Second
)

// SubmitterConfig tunes the retry loop and idempotency cache.
type SubmitterConfig struct {
	RetryInterval time.Duration
	ResultTTL     time.Duration
	Now           func() time.Time
}

// SubmitterService implements ports.Submitter. Only gateway timeouts are
// retried, with the identical envelope, until its time bounds expire.
type SubmitterService struct {
	network ports.NetworkService
	cache   ports.SubmissionCache
	repo    ports.SubmissionRepository
	audit   ports.AuditService
	metrics *metrics.Metrics
	cfg     SubmitterConfig
	log     zerolog.Logger
}

// NewSubmitterService creates a new SubmitterService. cache, repo, audit and m may be nil.
func NewSubmitterService(
	network ports.NetworkService,
	cache ports.SubmissionCache,
	repo ports.SubmissionRepository,
	audit ports.AuditService,
	m *metrics.Metrics,
	cfg SubmitterConfig,
	log zerolog.Logger,
) *SubmitterService {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = DefaultResultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SubmitterService{
		network: network,
		cache:   cache,
		repo:    repo,
		audit:   audit,
		metrics: m,
		cfg:     cfg,
		log:     logger.WithComponent(log, "submitter"),
	}
}

// Submit returns exactly one definitive result per envelope hash.
func (s *SubmitterService) Submit(ctx context.Context, env *domain.SignedEnvelope) (*domain.SubmitResult, error) {
	if env == nil || env.XDR == "" || env.Hash == "" {
		return nil, apperror.ErrMalformedEnvelope(errors.New("signed envelope is incomplete"))
	}
	log := s.log.With().Str("hash", env.Hash).Str("source", logger.ShortAddress(env.Source)).Logger()

	if prior := s.priorSuccess(ctx, env.Hash); prior != nil {
		log.Info().Msg("envelope already applied, returning recorded result")
		return prior, nil
	}

	sub := &domain.Submission{
		ID:        uuid.New(),
		Hash:      env.Hash,
		Source:    env.Source,
		Sequence:  env.Sequence,
		Status:    domain.SubmissionStatusPending,
		CreatedAt: s.cfg.Now().UTC(),
	}
	s.persist(ctx, sub)

	start := s.cfg.Now()
	defer func() { s.metrics.ObserveSubmitDuration(s.cfg.Now().Sub(start)) }()

	for {
		sub.Attempts++
		rec, err := s.network.SubmitTransaction(ctx, env.XDR)
		if err == nil {
			s.metrics.ObserveSubmitAttempt("success")
			return s.succeed(ctx, sub, rec.Ledger), nil
		}

		if ctx.Err() != nil {
			s.metrics.ObserveSubmitAttempt("cancelled")
			return s.resolveCancelled(ctx, sub)
		}

		if !apperror.IsTransient(err) {
			return s.fail(ctx, sub, err)
		}

		s.metrics.ObserveSubmitAttempt("timeout")
		if env.IsExpired(s.cfg.Now()) {
			return s.resolveExpired(ctx, sub)
		}

		log.Warn().Err(err).Int("attempts", sub.Attempts).Dur("retry_in", s.cfg.RetryInterval).Msg("gateway timeout, retrying same envelope")
		s.metrics.ObserveSubmitRetry()

		select {
		case <-ctx.Done():
			return s.resolveCancelled(ctx, sub)
		case <-time.After(s.cfg.RetryInterval):
		}
	}
}

// priorSuccess checks Redis first, then the submission log.
func (s *SubmitterService) priorSuccess(ctx context.Context, hash string) *domain.SubmitResult {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, hash)
		if err != nil {
			s.log.Warn().Err(err).Str("hash", hash).Msg("submission cache unavailable, falling back to log")
		} else if cached != nil && cached.Status == domain.SubmissionStatusSuccess {
			return cached
		}
	}

	if s.repo != nil {
		sub, err := s.repo.GetByHash(ctx, hash)
		if err != nil {
			s.log.Warn().Err(err).Str("hash", hash).Msg("submission log unavailable")
			return nil
		}
		if sub != nil && sub.Status == domain.SubmissionStatusSuccess {
			result := &domain.SubmitResult{Hash: sub.Hash, Ledger: sub.Ledger, Status: sub.Status, Attempts: sub.Attempts}
			s.cacheResult(ctx, result)
			return result
		}
	}
	return nil
}

// fail handles a non-retryable error. Bad sequence and duplicate rejections
// are resolved by a status lookup since the envelope may already be applied.
func (s *SubmitterService) fail(ctx context.Context, sub *domain.Submission, err error) (*domain.SubmitResult, error) {
	if apperror.CodeOf(err) != "NET_002" {
		s.metrics.ObserveSubmitAttempt("error")
		s.log.Error().Err(err).Str("hash", sub.Hash).Msg("submission failed")
		return nil, err
	}
	s.metrics.ObserveSubmitAttempt("rejected")

	var rejection *domain.SubmissionRejection
	if errors.As(err, &rejection) {
		sub.ResultCode = rejection.TransactionCode
		if rejection.TransactionCode == domain.ResultCodeBadSeq || rejection.TransactionCode == domain.ResultCodeDuplicate {
			rec, lookupErr := s.network.TransactionStatus(ctx, sub.Hash)
			if lookupErr == nil && rec != nil && rec.Successful {
				s.log.Info().Str("hash", sub.Hash).Str("result_code", sub.ResultCode).Msg("rejection resolved: envelope already applied")
				return s.succeed(ctx, sub, rec.Ledger), nil
			}
		}
	}

	sub.Status = domain.SubmissionStatusRejected
	s.persist(ctx, sub)
	s.log.Warn().Err(err).Str("hash", sub.Hash).Str("result_code", sub.ResultCode).Msg("submission rejected")
	if s.audit != nil {
		entry := domain.NewAuditLog(domain.AuditActionTxRejected, "transaction", sub.Hash, sub.Source)
		entry.Details = `{"result_code":"` + sub.ResultCode + `"}`
		s.audit.Log(ctx, entry)
	}
	return nil, err
}

// resolveCancelled polls once for the hash after the caller gave up.
func (s *SubmitterService) resolveCancelled(ctx context.Context, sub *domain.Submission) (*domain.SubmitResult, error) {
	pollCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusPollTimeout)
	defer cancel()

	rec, err := s.network.TransactionStatus(pollCtx, sub.Hash)
	if err == nil && rec != nil && rec.Successful {
		return s.succeed(pollCtx, sub, rec.Ledger), nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("hash", sub.Hash).Msg("status poll after cancellation failed")
	}

	sub.Status = domain.SubmissionStatusUnknown
	s.persist(pollCtx, sub)
	return nil, apperror.ErrStatusUnknown(sub.Hash)
}

// resolveExpired checks whether one of the timed-out attempts landed before
// telling the caller to rebuild.
func (s *SubmitterService) resolveExpired(ctx context.Context, sub *domain.Submission) (*domain.SubmitResult, error) {
	rec, err := s.network.TransactionStatus(ctx, sub.Hash)
	if err == nil && rec != nil && rec.Successful {
		s.log.Info().Str("hash", sub.Hash).Msg("expired envelope was applied during a timed-out attempt")
		return s.succeed(ctx, sub, rec.Ledger), nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("hash", sub.Hash).Msg("status lookup after expiry failed")
	}

	sub.Status = domain.SubmissionStatusExpired
	s.persist(ctx, sub)
	s.log.Warn().Str("hash", sub.Hash).Int("attempts", sub.Attempts).Msg("envelope expired while retrying")
	return nil, apperror.ErrEnvelopeExpired()
}

func (s *SubmitterService) succeed(ctx context.Context, sub *domain.Submission, ledger int32) *domain.SubmitResult {
	sub.Status = domain.SubmissionStatusSuccess
	sub.Ledger = ledger
	s.persist(ctx, sub)

	result := &domain.SubmitResult{Hash: sub.Hash, Ledger: ledger, Status: sub.Status, Attempts: sub.Attempts}
	s.cacheResult(ctx, result)

	s.log.Info().Str("hash", sub.Hash).Int32("ledger", ledger).Int("attempts", sub.Attempts).Msg("transaction applied")
	if s.audit != nil {
		s.audit.Log(ctx, domain.NewAuditLog(domain.AuditActionTxSubmitted, "transaction", sub.Hash, sub.Source))
	}
	return result
}

func (s *SubmitterService) cacheResult(ctx context.Context, result *domain.SubmitResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, result, s.cfg.ResultTTL); err != nil {
		s.log.Warn().Err(err).Str("hash", result.Hash).Msg("failed to cache submission result")
	}
}

func (s *SubmitterService) persist(ctx context.Context, sub *domain.Submission) {
	if s.repo == nil {
		return
	}
	sub.UpdatedAt = s.cfg.Now().UTC()
	if err := s.repo.Upsert(ctx, sub); err != nil {
		s.log.Warn().Err(err).Str("hash", sub.Hash).Str("status", string(sub.Status)).Msg("failed to record submission")
	}
}
