package service

import (
	"context"
	"time"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
)

// sessionSubject is the token subject: the API serves a single device owner.
const sessionSubject = "device"

// SessionService implements ports.SessionService.
type SessionService struct {
	presence ports.PresenceVerifier
	tokens   ports.TokenService
	audit    ports.AuditService
	log      zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(presence ports.PresenceVerifier, tokens ports.TokenService, audit ports.AuditService, log zerolog.Logger) *SessionService {
	return &SessionService{
		presence: presence,
		tokens:   tokens,
		audit:    audit,
		log:      logger.WithComponent(log, "session"),
	}
}

// Open verifies the device passcode and issues a session token.
func (s *SessionService) Open(ctx context.Context, passcode, clientIP string) (string, time.Time, error) {
	if passcode == "" {
		return "", time.Time{}, apperror.ErrAuthFailed()
	}
	if err := s.presence.Verify(ctx, passcode); err != nil {
		s.log.Warn().Str("ip", clientIP).Msg("session refused: passcode check failed")
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Generate(sessionSubject)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}

	if s.audit != nil {
		entry := domain.NewAuditLog(domain.AuditActionSessionOpened, "session", "", "")
		entry.IPAddress = clientIP
		s.audit.Log(ctx, entry)
	}
	s.log.Info().Str("ip", clientIP).Time("expires_at", expiresAt).Msg("session opened")
	return token, expiresAt, nil
}
