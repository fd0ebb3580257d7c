package postgres

import (
	"context"
	"errors"
	"fmt"

	"stellar-wallet-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SubmissionRepo implements ports.SubmissionRepository.
type SubmissionRepo struct {
	pool Pool
}

// NewSubmissionRepo creates a new SubmissionRepo.
func NewSubmissionRepo(pool Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

// Upsert records a submission keyed by envelope hash. A terminal SUCCESS row is
// never downgraded by a later write.
func (r *SubmissionRepo) Upsert(ctx context.Context, s *domain.Submission) error {
	query := `INSERT INTO submissions (id, hash, source, sequence, status, attempts, result_code, ledger, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (hash) DO UPDATE SET
			status = EXCLUDED.status,
			attempts = EXCLUDED.attempts,
			result_code = EXCLUDED.result_code,
			ledger = EXCLUDED.ledger,
			updated_at = EXCLUDED.updated_at
		WHERE submissions.status <> 'SUCCESS'`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Hash, s.Source, s.Sequence, string(s.Status),
		s.Attempts, s.ResultCode, s.Ledger, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert submission: %w", err)
	}
	return nil
}

// GetByHash fetches a submission by envelope hash.
func (r *SubmissionRepo) GetByHash(ctx context.Context, hash string) (*domain.Submission, error) {
	query := `SELECT id, hash, source, sequence, status, attempts, result_code, ledger, created_at, updated_at
		FROM submissions WHERE hash = $1`

	s := &domain.Submission{}
	var status string
	err := r.pool.QueryRow(ctx, query, hash).Scan(
		&s.ID, &s.Hash, &s.Source, &s.Sequence, &status,
		&s.Attempts, &s.ResultCode, &s.Ledger, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	s.Status = domain.SubmissionStatus(status)
	return s, nil
}
