package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionTxSigned {
				t.Errorf("expected TX_SIGNED, got %s", log.Action)
			}
			close(done)
			return nil
		},
	)

	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionTxSigned, "envelope", "abc123", "GSOURCE"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_RepoErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.AuditLog) error {
			defer close(done)
			return errors.New("db down")
		},
	)

	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionKeyStored, "key", "primary", ""))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit repo not called in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), domain.NewAuditLog(domain.AuditActionSessionOpened, "session", "", ""))
	time.Sleep(50 * time.Millisecond)
}

func TestAuditService_Log_SurvivesCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan error, 1)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) error {
			done <- ctx.Err()
			return nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Log(ctx, &domain.AuditLog{Action: domain.AuditActionTxSubmitted, ResourceType: "envelope"})

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("persist context already done: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry not persisted in time")
	}
}

func TestAuditService_Log_StampsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan *domain.AuditLog, 1)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.AuditLog) error {
			done <- entry
			return nil
		},
	)

	svc.Log(context.Background(), &domain.AuditLog{Action: domain.AuditActionKeyRemoved, ResourceType: "key"})
	svc.Log(context.Background(), nil)

	select {
	case entry := <-done:
		if entry.ID == uuid.Nil || entry.CreatedAt.IsZero() {
			t.Errorf("entry not stamped: %+v", entry)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry not persisted in time")
	}
}
