package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"stellar-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{
	"id", "hash", "source", "sequence", "status", "attempts", "result_code", "ledger", "created_at", "updated_at",
}

func TestSubmissionRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := &domain.Submission{
		ID:        uuid.New(),
		Hash:      "abc123",
		Source:    "GSOURCE",
		Sequence:  42,
		Status:    domain.SubmissionStatusSuccess,
		Attempts:  3,
		Ledger:    1001,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(s.ID, s.Hash, s.Source, s.Sequence, "SUCCESS", s.Attempts, "", s.Ledger, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepo_Upsert_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepo(mock)
	mock.ExpectExec("INSERT INTO submissions").WillReturnError(errors.New("connection reset"))

	err = repo.Upsert(context.Background(), &domain.Submission{Hash: "abc"})
	assert.ErrorContains(t, err, "upsert submission")
}

func TestSubmissionRepo_GetByHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepo(mock)
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM submissions WHERE hash").
		WithArgs("abc123").
		WillReturnRows(pgxmock.NewRows(submissionColumns).
			AddRow(id, "abc123", "GSOURCE", int64(42), "SUCCESS", 1, "", int32(77), now, now))

	got, err := repo.GetByHash(context.Background(), "abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.SubmissionStatusSuccess, got.Status)
	assert.Equal(t, int32(77), got.Ledger)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepo_GetByHash_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepo(mock)
	mock.ExpectQuery("SELECT .+ FROM submissions WHERE hash").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(submissionColumns))

	got, err := repo.GetByHash(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	entry := domain.NewAuditLog(domain.AuditActionTxSubmitted, "submission", "abc123", "GSOURCE")
	entry.IPAddress = "127.0.0.1"

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, "GSOURCE", "TX_SUBMITTED", "submission", "abc123", "", "127.0.0.1", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyBlobRepo_SetGetExistsRemove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyBlobRepo(mock)
	ctx := context.Background()
	blob := []byte(`{"version":1}`)

	mock.ExpectExec("INSERT INTO key_blobs").
		WithArgs("primary", blob).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT blob FROM key_blobs").
		WithArgs("primary").
		WillReturnRows(pgxmock.NewRows([]string{"blob"}).AddRow(blob))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("primary").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("DELETE FROM key_blobs").
		WithArgs("primary").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Set(ctx, "primary", blob))

	got, err := repo.Get(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	ok, err := repo.Exists(ctx, "primary")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Remove(ctx, "primary"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyBlobRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyBlobRepo(mock)
	mock.ExpectQuery("SELECT blob FROM key_blobs").
		WithArgs("absent").
		WillReturnRows(pgxmock.NewRows([]string{"blob"}))

	got, err := repo.Get(context.Background(), "absent")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeyBlobRepo_Exists_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyBlobRepo(mock)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("k").WillReturnError(errors.New("db down"))

	_, err = repo.Exists(context.Background(), "k")
	assert.ErrorContains(t, err, "check key blob")
}
