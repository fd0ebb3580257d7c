// Package app wires configuration, adapters and services into a Wallet shared
// by the HTTP server and the CLI.
package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"stellar-wallet-core/config"
	"stellar-wallet-core/internal/adapter/blockaid"
	"stellar-wallet-core/internal/adapter/horizon"
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/adapter/keychain"
	"stellar-wallet-core/internal/adapter/sorobanrpc"
	pgStorage "stellar-wallet-core/internal/adapter/storage/postgres"
	redisStorage "stellar-wallet-core/internal/adapter/storage/redis"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/internal/service"
	"stellar-wallet-core/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"

	horizonTimeout    = 30 * time.Second
	sorobanRPCTimeout = 15 * time.Second
)

// Infra holds the optional shared infrastructure. A nil Pool disables
// submission history and the audit trail; a nil Redis disables the
// submission cache, account locks and rate limiting.
type Infra struct {
	Pool    *pgxpool.Pool
	Redis   *goredis.Client
	Metrics *metrics.Metrics
}

// Wallet is the fully wired set of services.
type Wallet struct {
	Network   *horizon.Client
	Keys      *service.KeyStoreService
	Sessions  *service.SessionService
	Tokens    *service.JWTTokenService
	Builder   *service.TransactionBuilderService
	Paths     *service.PathFinderService
	Signer    *service.SignerService
	Submitter *service.SubmitterService
	Security  *service.SecurityService
	Fees      *service.FeeService
	Flow      *service.WalletFlowService
	Audit     ports.AuditService // nil without a database

	Passphrase string
	Defaults   dto.Defaults
	Health     []ports.HealthChecker
}

// New builds a Wallet from cfg. cfg.Network must already be resolved.
func New(cfg *config.Config, infra Infra, log zerolog.Logger) (*Wallet, error) {
	defaults, err := Defaults(cfg.Transaction)
	if err != nil {
		return nil, err
	}
	reserve, err := decimal.NewFromString(cfg.Network.MinAccountReserve)
	if err != nil {
		return nil, fmt.Errorf("invalid network.min_account_reserve: %w", err)
	}
	kdf, err := service.DefaultKDFParams(cfg.Keystore.KDF)
	if err != nil {
		return nil, err
	}

	network := horizon.NewClient(horizon.NewAPI(cfg.Network.HorizonURL, horizonTimeout))
	health := []ports.HealthChecker{network}

	var simulator ports.ContractSimulator
	if cfg.Network.SorobanRPCURL != "" {
		rpc := sorobanrpc.NewClient(cfg.Network.SorobanRPCURL, &http.Client{Timeout: sorobanRPCTimeout}, log)
		simulator = rpc
		health = append(health, rpc)
	}

	var (
		audit      ports.AuditService
		repo       ports.SubmissionRepository
		cache      ports.SubmissionCache
		locker     ports.AccountLocker
		scanner    ports.SecurityScanner
		keyBackend ports.PlatformKeystore
	)
	if infra.Pool != nil {
		audit = service.NewAuditService(pgStorage.NewAuditRepo(infra.Pool), log)
		repo = pgStorage.NewSubmissionRepo(infra.Pool)
		health = append(health, pgStorage.NewHealthCheck(infra.Pool))
	}
	if infra.Redis != nil {
		cache = redisStorage.NewSubmissionCache(infra.Redis)
		locker = redisStorage.NewAccountLock(infra.Redis)
		health = append(health, redisStorage.NewHealthCheck(infra.Redis))
	}
	if cfg.Security.Enabled && cfg.Security.ScannerURL != "" {
		scanner = blockaid.NewScanner(cfg.Security.ScannerURL, &http.Client{Timeout: cfg.Security.Timeout}, log)
	}

	switch cfg.Keystore.Backend {
	case "", BackendFile:
		deviceKey, err := service.NewAESEncryptionService(cfg.Keystore.DeviceKey)
		if err != nil {
			return nil, fmt.Errorf("keystore device key: %w", err)
		}
		fk, err := keychain.NewFileKeychain(cfg.Keystore.Dir, deviceKey)
		if err != nil {
			return nil, err
		}
		keyBackend = fk
	case BackendPostgres:
		if infra.Pool == nil {
			return nil, errors.New("keystore backend postgres requires a database")
		}
		keyBackend = pgStorage.NewKeyBlobRepo(infra.Pool)
	default:
		return nil, fmt.Errorf("unknown keystore backend %q", cfg.Keystore.Backend)
	}

	presence := service.NewPasscodeVerifier(cfg.Keystore.PasscodeHash)
	keys := service.NewKeyStoreService(keyBackend, presence, kdf, audit, infra.Metrics, log)
	tokens := service.NewJWTTokenService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)
	builder := service.NewTransactionBuilderService(network, simulator, service.BuilderConfig{
		NetworkPassphrase: cfg.Network.Passphrase,
		MinAccountReserve: reserve,
	}, infra.Metrics, log)
	signer := service.NewSignerService(keys, audit, log)
	submitter := service.NewSubmitterService(network, cache, repo, audit, infra.Metrics, service.SubmitterConfig{
		RetryInterval: cfg.Submit.RetryInterval,
		ResultTTL:     cfg.Submit.CacheTTL,
	}, log)
	security := service.NewSecurityService(scanner, network, cfg.Network.IsMainnet(), infra.Metrics, log)

	return &Wallet{
		Network:    network,
		Keys:       keys,
		Sessions:   service.NewSessionService(presence, tokens, audit, log),
		Tokens:     tokens,
		Builder:    builder,
		Paths:      service.NewPathFinderService(network, log),
		Signer:     signer,
		Submitter:  submitter,
		Security:   security,
		Fees:       service.NewFeeService(network, log),
		Flow:       service.NewWalletFlowService(locker, builder, security, signer, submitter, audit, cfg.Submit.LockTTL, log),
		Audit:      audit,
		Passphrase: cfg.Network.Passphrase,
		Defaults:   defaults,
		Health:     health,
	}, nil
}

// Defaults converts the transaction section into request defaults.
func Defaults(cfg config.TransactionConfig) (dto.Defaults, error) {
	fee, err := decimal.NewFromString(cfg.DefaultFee)
	if err != nil {
		return dto.Defaults{}, fmt.Errorf("invalid transaction.default_fee: %w", err)
	}
	return dto.Defaults{
		Fee:             fee,
		TimeoutSeconds:  cfg.DefaultTimeout,
		SlippagePercent: decimal.NewFromFloat(cfg.DefaultSlippage),
	}, nil
}
