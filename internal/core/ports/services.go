package ports

import (
	"context"
	"time"

	"stellar-wallet-core/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM sealing with the device key. The
// associated data binds a ciphertext to the slot it was written to.
type EncryptionService interface {
	Seal(plaintext []byte, associatedData string) (string, error)
	Open(ciphertext string, associatedData string) ([]byte, error)
}

// TokenService handles session JWT operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   string
	SessionID string
}

// SubmissionCache is the Redis-layer idempotency check for submissions (fast path).
type SubmissionCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, hash string) (*domain.SubmitResult, error)
	Set(ctx context.Context, result *domain.SubmitResult, ttl time.Duration) error
}

// AccountLocker serializes build-to-submit flows per account.
type AccountLocker interface {
	// Acquire returns an owner token and false when the lock is already held.
	Acquire(ctx context.Context, address string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, address, token string) error
}

// --- Service Ports (Business Logic) ---

// KeyStore is the encrypted-at-rest custody of signing keys.
type KeyStore interface {
	Store(ctx context.Context, id string, key *domain.KeyMaterial, credential string) error
	// Unlock returns a handle the caller must Wipe. Prefer WithKey.
	Unlock(ctx context.Context, id, credential string) (*domain.KeyMaterial, error)
	// WithKey unlocks, runs fn and wipes the key before returning.
	WithKey(ctx context.Context, id, credential string, fn func(*domain.KeyMaterial) error) error
	Remove(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// TransactionBuilder constructs unsigned envelopes from intents.
type TransactionBuilder interface {
	Build(ctx context.Context, intent domain.TransactionIntent) (*domain.UnsignedEnvelope, error)
	BuildSwap(ctx context.Context, intent domain.SwapIntent) (*domain.UnsignedEnvelope, error)
	BuildChangeTrust(ctx context.Context, intent domain.TrustlineIntent) (*domain.UnsignedEnvelope, error)
}

// PathFinder finds strict-send conversion paths. A nil path with a nil error means no path exists.
type PathFinder interface {
	FindPath(ctx context.Context, source, dest domain.Asset, sourceAmount, slippagePercent decimal.Decimal) (*domain.SwapPath, error)
}

// Signer signs envelopes. It never retains the key.
type Signer interface {
	Sign(env *domain.UnsignedEnvelope, key *domain.KeyMaterial) (*domain.SignedEnvelope, error)
}

// SigningService composes key unlock and signing in one scoped call.
type SigningService interface {
	UnlockAndSign(ctx context.Context, keyID, credential string, env *domain.UnsignedEnvelope) (*domain.SignedEnvelope, error)
}

// Submitter sends signed envelopes with retry on gateway timeouts only.
type Submitter interface {
	Submit(ctx context.Context, env *domain.SignedEnvelope) (*domain.SubmitResult, error)
}

// SecurityService scans subjects and returns fresh verdicts.
type SecurityService interface {
	AssessAsset(ctx context.Context, asset domain.Asset) (*domain.SecurityVerdict, error)
	// AssessAssets returns verdicts keyed by asset identifier.
	AssessAssets(ctx context.Context, assets []domain.Asset) (map[string]domain.SecurityVerdict, error)
	AssessSite(ctx context.Context, url string) (*domain.SecurityVerdict, error)
	AssessTransaction(ctx context.Context, req TransactionCheck) (*TransactionAssessment, error)
}

// TransactionCheck is the input for a transaction assessment.
type TransactionCheck struct {
	EnvelopeXDR string
	SiteURL     string // optional origin of the request
	Destination string // optional; used for the memo-required check
	Memo        string
}

// TransactionAssessment bundles every verdict that can gate a confirm action.
type TransactionAssessment struct {
	Transaction    domain.SecurityVerdict  `json:"transaction"`
	Site           *domain.SecurityVerdict `json:"site,omitempty"`
	MemoRequired   bool                    `json:"memo_required"`
	BalanceChanges []domain.BalanceChange  `json:"balance_changes"`
	Gate           domain.GateDecision     `json:"gate"`
}

// FeeService recommends a fee from network statistics.
type FeeService interface {
	Recommend(ctx context.Context) *domain.FeeRecommendation
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// SessionService exchanges the device passcode for a session token.
type SessionService interface {
	Open(ctx context.Context, passcode, clientIP string) (string, time.Time, error)
}

// WalletFlow runs lock, build, assess, sign and submit for one payment.
type WalletFlow interface {
	Send(ctx context.Context, req SendRequest) (*SendResult, error)
}

// SendRequest holds validated input for the full send flow.
type SendRequest struct {
	Intent           domain.TransactionIntent
	KeyID            string
	Credential       string
	SiteURL          string
	OverrideWarnings bool
	ClientIP         string
}

// SendResult is the outcome of a completed send.
type SendResult struct {
	Submission *domain.SubmitResult   `json:"submission"`
	Assessment *TransactionAssessment `json:"assessment,omitempty"`
	Envelope   *domain.SignedEnvelope `json:"envelope"`
}
