package postgres

import (
	"context"
	"fmt"
)

// schemaCheck fails until Migrate has created the wallet tables.
const schemaCheck = `SELECT 1 FROM submissions, audit_logs, key_blobs LIMIT 0`

// HealthCheck reports the database healthy once it is reachable and migrated.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.pool.Exec(ctx, schemaCheck); err != nil {
		return fmt.Errorf("wallet schema unavailable: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
