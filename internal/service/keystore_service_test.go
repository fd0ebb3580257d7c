package service

import (
	"context"
	"errors"
	"testing"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports/mocks"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type keystoreFixture struct {
	svc      *KeyStoreService
	platform *mocks.MockPlatformKeystore
	presence *mocks.MockPresenceVerifier
	audit    *mocks.MockAuditService
	metrics  *metrics.Metrics
}

func newKeystoreFixture(t *testing.T) keystoreFixture {
	ctrl := gomock.NewController(t)
	f := keystoreFixture{
		platform: mocks.NewMockPlatformKeystore(ctrl),
		presence: mocks.NewMockPresenceVerifier(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
		metrics:  metrics.New(prometheus.NewRegistry()),
	}
	f.svc = NewKeyStoreService(f.platform, f.presence, testScryptParams, f.audit, f.metrics, newTestLogger())
	return f
}

func sealedBlob(t *testing.T, kp *keypair.Full, passcode string) []byte {
	t.Helper()
	raw := strkey.MustDecode(strkey.VersionByteSeed, kp.Seed())
	blob, err := sealVault(raw[:], kp.Address(), passcode, testScryptParams)
	require.NoError(t, err)
	return blob
}

func TestKeyStore_StoreThenUnlock(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	kp := keypair.MustRandom()
	key, err := domain.KeyMaterialFromSecret(kp.Seed())
	require.NoError(t, err)

	var stored []byte
	f.presence.EXPECT().Verify(ctx, "1234").Return(nil).Times(2)
	f.platform.EXPECT().Set(ctx, "main", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, blob []byte) error {
		stored = blob
		return nil
	})
	f.audit.EXPECT().Log(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionKeyStored, entry.Action)
		assert.Equal(t, kp.Address(), entry.Address)
	})

	require.NoError(t, f.svc.Store(ctx, "main", key, "1234"))
	assert.NotContains(t, string(stored), kp.Seed())

	f.platform.EXPECT().Get(ctx, "main").Return(stored, nil)
	unlocked, err := f.svc.Unlock(ctx, "main", "1234")
	require.NoError(t, err)
	defer unlocked.Wipe()

	addr, err := unlocked.Address()
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), addr)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.UnlocksTotal.WithLabelValues("ok")))
}

func TestKeyStore_Store_PresenceFailed(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	key, err := domain.KeyMaterialFromSecret(keypair.MustRandom().Seed())
	require.NoError(t, err)

	f.presence.EXPECT().Verify(ctx, "bad").Return(apperror.ErrAuthFailed())

	err = f.svc.Store(ctx, "main", key, "bad")
	assertAppError(t, err, "AUTH_002")
}

func TestKeyStore_Store_StorageUnavailable(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	key, err := domain.KeyMaterialFromSecret(keypair.MustRandom().Seed())
	require.NoError(t, err)

	f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
	f.platform.EXPECT().Set(ctx, "main", gomock.Any()).Return(errors.New("disk full"))

	err = f.svc.Store(ctx, "main", key, "1234")
	assertAppError(t, err, "AUTH_003")
}

func TestKeyStore_Unlock_Errors(t *testing.T) {
	kp := keypair.MustRandom()

	tests := []struct {
		name     string
		setup    func(f keystoreFixture, ctx context.Context)
		wantCode string
	}{
		{
			name: "presence failed",
			setup: func(f keystoreFixture, ctx context.Context) {
				f.presence.EXPECT().Verify(ctx, "1234").Return(apperror.ErrAuthFailed())
				f.audit.EXPECT().Log(ctx, gomock.Any())
			},
			wantCode: "AUTH_002",
		},
		{
			name: "not found",
			setup: func(f keystoreFixture, ctx context.Context) {
				f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
				f.platform.EXPECT().Get(ctx, "main").Return(nil, nil)
			},
			wantCode: "AUTH_001",
		},
		{
			name: "storage unavailable",
			setup: func(f keystoreFixture, ctx context.Context) {
				f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
				f.platform.EXPECT().Get(ctx, "main").Return(nil, errors.New("keychain locked"))
			},
			wantCode: "AUTH_003",
		},
		{
			name: "wrong passphrase for vault",
			setup: func(f keystoreFixture, ctx context.Context) {
				f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
				f.platform.EXPECT().Get(ctx, "main").Return(sealedBlob(t, kp, "other"), nil)
				f.audit.EXPECT().Log(ctx, gomock.Any())
			},
			wantCode: "AUTH_002",
		},
		{
			name: "corrupted blob",
			setup: func(f keystoreFixture, ctx context.Context) {
				f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
				f.platform.EXPECT().Get(ctx, "main").Return([]byte("not a vault"), nil)
			},
			wantCode: "AUTH_005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newKeystoreFixture(t)
			ctx := context.Background()
			tt.setup(f, ctx)

			key, err := f.svc.Unlock(ctx, "main", "1234")
			assert.Nil(t, key)
			assertAppError(t, err, tt.wantCode)
		})
	}
}

func TestKeyStore_WithKey_WipesAfterUse(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	kp := keypair.MustRandom()

	f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
	f.platform.EXPECT().Get(ctx, "main").Return(sealedBlob(t, kp, "1234"), nil)

	var seen *domain.KeyMaterial
	err := f.svc.WithKey(ctx, "main", "1234", func(key *domain.KeyMaterial) error {
		seen = key
		addr, err := key.Address()
		require.NoError(t, err)
		assert.Equal(t, kp.Address(), addr)
		return errors.New("signing failed")
	})

	assert.EqualError(t, err, "signing failed")
	require.NotNil(t, seen)
	assert.True(t, seen.Wiped())
}

func TestKeyStore_ConcurrentUnlockFailsFast(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	kp := keypair.MustRandom()

	f.presence.EXPECT().Verify(ctx, "1234").Return(nil)
	f.platform.EXPECT().Get(ctx, "main").Return(sealedBlob(t, kp, "1234"), nil)

	err := f.svc.WithKey(ctx, "main", "1234", func(*domain.KeyMaterial) error {
		_, err := f.svc.Unlock(ctx, "main", "1234")
		assertAppError(t, err, "AUTH_004")

		err = f.svc.WithKey(ctx, "main", "1234", func(*domain.KeyMaterial) error { return nil })
		assertAppError(t, err, "AUTH_004")
		return nil
	})
	require.NoError(t, err)
}

func TestKeyStore_Remove(t *testing.T) {
	t.Run("removes existing", func(t *testing.T) {
		f := newKeystoreFixture(t)
		ctx := context.Background()
		f.platform.EXPECT().Exists(ctx, "main").Return(true, nil)
		f.platform.EXPECT().Remove(ctx, "main").Return(nil)
		f.audit.EXPECT().Log(ctx, gomock.Any())

		assert.NoError(t, f.svc.Remove(ctx, "main"))
	})

	t.Run("absent key", func(t *testing.T) {
		f := newKeystoreFixture(t)
		ctx := context.Background()
		f.platform.EXPECT().Exists(ctx, "main").Return(false, nil)

		assertAppError(t, f.svc.Remove(ctx, "main"), "AUTH_001")
	})
}

func TestKeyStore_Exists(t *testing.T) {
	f := newKeystoreFixture(t)
	ctx := context.Background()
	f.platform.EXPECT().Exists(ctx, "main").Return(true, nil)
	f.platform.EXPECT().Exists(ctx, "other").Return(false, errors.New("io"))

	ok, err := f.svc.Exists(ctx, "main")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.svc.Exists(ctx, "other")
	assertAppError(t, err, "AUTH_003")
}
