package service

import (
	"context"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
)

// FeeService implements ports.FeeService.
type FeeService struct {
	network ports.NetworkService
	log     zerolog.Logger
}

// NewFeeService creates a new FeeService.
func NewFeeService(network ports.NetworkService, log zerolog.Logger) *FeeService {
	return &FeeService{network: network, log: logger.WithComponent(log, "fees")}
}

// Recommend proposes the mode of recent max fees. It never fails: without
// stats the default fee and LOW congestion are returned.
func (s *FeeService) Recommend(ctx context.Context) *domain.FeeRecommendation {
	fallback := &domain.FeeRecommendation{RecommendedFee: domain.DefaultRecommendedFee, Congestion: domain.CongestionLow}

	stats, err := s.network.FeeStats(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("fee stats unavailable, using default fee")
		return fallback
	}
	if stats == nil {
		return fallback
	}

	stroops := stats.MaxFeeMode
	if stroops <= 0 {
		stroops = stats.LastLedgerBaseFee
	}
	if stroops <= 0 {
		fallback.Congestion = domain.CongestionFromCapacity(stats.LedgerCapacityUsage)
		return fallback
	}
	return &domain.FeeRecommendation{
		RecommendedFee: domain.FromStroops(stroops),
		Congestion:     domain.CongestionFromCapacity(stats.LedgerCapacityUsage),
	}
}
