package ports

import (
	"context"

	"stellar-wallet-core/internal/core/domain"

	"github.com/shopspring/decimal"
)

// NetworkService is the network data service the pipeline reads from and submits to.
type NetworkService interface {
	// LoadAccount returns nil, nil when the account does not exist on the network.
	LoadAccount(ctx context.Context, address string) (*domain.Account, error)
	SubmitTransaction(ctx context.Context, envelopeXDR string) (*domain.TransactionRecord, error)
	// FindStrictSendPaths returns network-ranked path records, best first.
	FindStrictSendPaths(ctx context.Context, source domain.Asset, sourceAmount decimal.Decimal, dest domain.Asset) ([]domain.PathQuote, error)
	FeeStats(ctx context.Context) (*domain.NetworkFeeStats, error)
	// TransactionStatus returns nil, nil when the network has no record of hash.
	TransactionStatus(ctx context.Context, hash string) (*domain.TransactionRecord, error)
}

// SecurityScanner is the security provider consumed by the assessor.
type SecurityScanner interface {
	ScanAsset(ctx context.Context, asset domain.Asset) (*domain.AssetScanResult, error)
	// ScanAssets returns results keyed by asset identifier.
	ScanAssets(ctx context.Context, assets []domain.Asset) (map[string]*domain.AssetScanResult, error)
	ScanSite(ctx context.Context, url string) (*domain.SiteScanResult, error)
	ScanTransaction(ctx context.Context, envelopeXDR, url string) (*domain.TransactionScanResult, error)
}

// ContractSimulator previews contract invocations. A failing invocation is a
// result with Error set; only transport failures are returned as errors.
type ContractSimulator interface {
	SimulateTransaction(ctx context.Context, envelopeXDR string) (*domain.SimulationResult, error)
}
