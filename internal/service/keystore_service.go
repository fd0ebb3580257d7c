package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"
	"stellar-wallet-core/pkg/metrics"

	"github.com/rs/zerolog"
)

// KeyStoreService implements ports.KeyStore over a platform keystore. Each blob
// is a passphrase-encrypted vault; nothing unlocked is kept between calls.
type KeyStoreService struct {
	platform ports.PlatformKeystore
	presence ports.PresenceVerifier
	kdf      KDFParams
	audit    ports.AuditService
	metrics  *metrics.Metrics
	log      zerolog.Logger

	// single in-flight unlock; a second attempt fails fast
	unlocking sync.Mutex
}

// NewKeyStoreService creates a new KeyStoreService. audit and m may be nil.
func NewKeyStoreService(
	platform ports.PlatformKeystore,
	presence ports.PresenceVerifier,
	kdf KDFParams,
	audit ports.AuditService,
	m *metrics.Metrics,
	log zerolog.Logger,
) *KeyStoreService {
	return &KeyStoreService{
		platform: platform,
		presence: presence,
		kdf:      kdf,
		audit:    audit,
		metrics:  m,
		log:      logger.WithComponent(log, "keystore"),
	}
}

// Store encrypts key under credential and writes it to slot id, replacing any previous blob.
func (s *KeyStoreService) Store(ctx context.Context, id string, key *domain.KeyMaterial, credential string) error {
	if id == "" {
		return apperror.Validation("key id is required")
	}
	if err := s.presence.Verify(ctx, credential); err != nil {
		return err
	}

	seed, err := key.Bytes()
	if err != nil {
		return apperror.Validation("key material has been wiped")
	}
	address, err := key.Address()
	if err != nil {
		return apperror.InternalError(fmt.Errorf("deriving address: %w", err))
	}

	blob, err := sealVault(seed, address, credential, s.kdf)
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}
	if err := s.platform.Set(ctx, id, blob); err != nil {
		return apperror.ErrStorageUnavailable(err)
	}

	s.log.Info().Str("key_id", id).Str("address", logger.ShortAddress(address)).Msg("key stored")
	s.record(ctx, domain.AuditActionKeyStored, id, address)
	return nil
}

// Unlock returns the key stored in slot id. The caller must Wipe it; WithKey does so automatically.
func (s *KeyStoreService) Unlock(ctx context.Context, id, credential string) (*domain.KeyMaterial, error) {
	if !s.unlocking.TryLock() {
		return nil, apperror.ErrUnlockInProgress()
	}
	defer s.unlocking.Unlock()

	return s.unlock(ctx, id, credential)
}

// WithKey holds the unlock slot for the whole of fn and wipes the key before returning.
func (s *KeyStoreService) WithKey(ctx context.Context, id, credential string, fn func(*domain.KeyMaterial) error) error {
	if !s.unlocking.TryLock() {
		return apperror.ErrUnlockInProgress()
	}
	defer s.unlocking.Unlock()

	key, err := s.unlock(ctx, id, credential)
	if err != nil {
		return err
	}
	defer key.Wipe()

	return fn(key)
}

func (s *KeyStoreService) unlock(ctx context.Context, id, credential string) (*domain.KeyMaterial, error) {
	if err := s.presence.Verify(ctx, credential); err != nil {
		s.metrics.ObserveUnlock("presence_failed")
		if apperror.CodeOf(err) == "AUTH_002" {
			s.record(ctx, domain.AuditActionKeyUnlockFailed, id, "")
		}
		return nil, err
	}

	blob, err := s.platform.Get(ctx, id)
	if err != nil {
		s.metrics.ObserveUnlock("storage_unavailable")
		return nil, apperror.ErrStorageUnavailable(err)
	}
	if blob == nil {
		s.metrics.ObserveUnlock("not_found")
		return nil, apperror.ErrKeyNotFound()
	}

	seed, address, err := openVault(blob, credential)
	if err != nil {
		if errors.Is(err, errVaultPassphrase) {
			s.metrics.ObserveUnlock("auth_failed")
			s.record(ctx, domain.AuditActionKeyUnlockFailed, id, address)
			return nil, apperror.ErrAuthFailed()
		}
		s.metrics.ObserveUnlock("corrupted")
		s.log.Error().Err(err).Str("key_id", id).Msg("stored key is corrupted")
		return nil, apperror.ErrKeyCorrupted(err)
	}
	defer zeroBytes(seed)

	key, err := domain.NewKeyMaterial(seed)
	if err != nil {
		s.metrics.ObserveUnlock("corrupted")
		return nil, apperror.ErrKeyCorrupted(err)
	}
	derived, err := key.Address()
	if err != nil || derived != address {
		key.Wipe()
		s.metrics.ObserveUnlock("corrupted")
		return nil, apperror.ErrKeyCorrupted(fmt.Errorf("vault address does not match key"))
	}

	s.metrics.ObserveUnlock("ok")
	return key, nil
}

// Remove deletes the blob in slot id.
func (s *KeyStoreService) Remove(ctx context.Context, id string) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ErrKeyNotFound()
	}
	if err := s.platform.Remove(ctx, id); err != nil {
		return apperror.ErrStorageUnavailable(err)
	}

	s.log.Info().Str("key_id", id).Msg("key removed")
	s.record(ctx, domain.AuditActionKeyRemoved, id, "")
	return nil
}

// Exists reports whether slot id holds a blob. It does not require presence.
func (s *KeyStoreService) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.platform.Exists(ctx, id)
	if err != nil {
		return false, apperror.ErrStorageUnavailable(err)
	}
	return ok, nil
}

func (s *KeyStoreService) record(ctx context.Context, action domain.AuditAction, id, address string) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, domain.NewAuditLog(action, "key", id, address))
}
