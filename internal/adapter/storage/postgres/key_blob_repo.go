package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// KeyBlobRepo stores opaque encrypted key blobs. It implements ports.PlatformKeystore
// for deployments where the keychain lives in the database.
type KeyBlobRepo struct {
	pool Pool
}

// NewKeyBlobRepo creates a new KeyBlobRepo.
func NewKeyBlobRepo(pool Pool) *KeyBlobRepo {
	return &KeyBlobRepo{pool: pool}
}

func (r *KeyBlobRepo) Set(ctx context.Context, id string, blob []byte) error {
	query := `INSERT INTO key_blobs (id, blob, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, id, blob); err != nil {
		return fmt.Errorf("store key blob: %w", err)
	}
	return nil
}

func (r *KeyBlobRepo) Get(ctx context.Context, id string) ([]byte, error) {
	var blob []byte
	err := r.pool.QueryRow(ctx, `SELECT blob FROM key_blobs WHERE id = $1`, id).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get key blob: %w", err)
	}
	return blob, nil
}

func (r *KeyBlobRepo) Remove(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM key_blobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("remove key blob: %w", err)
	}
	return nil
}

func (r *KeyBlobRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM key_blobs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check key blob: %w", err)
	}
	return exists, nil
}
