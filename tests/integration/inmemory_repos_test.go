package integration

import (
	"context"
	"sync"

	"stellar-wallet-core/internal/core/domain"
)

// --- In-Memory Submission Repo ---

type inMemorySubmissionRepo struct {
	mu     sync.RWMutex
	byHash map[string]domain.Submission
}

func newInMemorySubmissionRepo() *inMemorySubmissionRepo {
	return &inMemorySubmissionRepo{byHash: make(map[string]domain.Submission)}
}

func (r *inMemorySubmissionRepo) Upsert(ctx context.Context, s *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHash[s.Hash] = *s
	return nil
}

func (r *inMemorySubmissionRepo) GetByHash(ctx context.Context, hash string) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byHash[hash]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
