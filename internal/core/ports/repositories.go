package ports

import (
	"context"

	"stellar-wallet-core/internal/core/domain"
)

// SubmissionRepository persists the submission log.
type SubmissionRepository interface {
	Upsert(ctx context.Context, s *domain.Submission) error
	GetByHash(ctx context.Context, hash string) (*domain.Submission, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
