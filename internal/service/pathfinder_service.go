package service

import (
	"context"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// rateDecimals is the precision of a quoted conversion rate.
const rateDecimals = 7

// PathFinderService implements ports.PathFinder over strict-send path queries.
type PathFinderService struct {
	network ports.NetworkService
	log     zerolog.Logger
}

// NewPathFinderService creates a new PathFinderService.
func NewPathFinderService(network ports.NetworkService, log zerolog.Logger) *PathFinderService {
	return &PathFinderService{
		network: network,
		log:     logger.WithComponent(log, "pathfinder"),
	}
}

// FindPath takes the network's first-ranked record. A nil path with a nil
// error means no path exists.
func (s *PathFinderService) FindPath(ctx context.Context, source, dest domain.Asset, sourceAmount, slippagePercent decimal.Decimal) (*domain.SwapPath, error) {
	if source.Equal(dest) {
		return nil, apperror.ErrInvalidAsset("source and destination assets must differ")
	}
	if slippagePercent.IsNegative() || slippagePercent.GreaterThan(hundred) {
		return nil, apperror.ErrInvalidSlippage()
	}
	if !sourceAmount.IsPositive() || !domain.FitsPrecision(sourceAmount, source.Decimals()) {
		return nil, apperror.ErrInvalidAmount()
	}

	quotes, err := s.network.FindStrictSendPaths(ctx, source, sourceAmount, dest)
	if err != nil {
		return nil, apperror.ErrNetworkUnavailable(err)
	}
	if len(quotes) == 0 {
		s.log.Debug().
			Str("source", source.Identifier()).
			Str("dest", dest.Identifier()).
			Str("amount", sourceAmount.String()).
			Msg("no path found")
		return nil, nil
	}

	best := quotes[0]
	path := &domain.SwapPath{
		SourceAsset:          source,
		DestAsset:            dest,
		SourceAmount:         sourceAmount,
		DestinationAmount:    best.DestinationAmount,
		DestinationAmountMin: MinimumReceived(best.DestinationAmount, slippagePercent, dest.Decimals()),
		ConversionRate:       best.DestinationAmount.DivRound(sourceAmount, rateDecimals),
		Path:                 best.Path,
		SlippagePercent:      slippagePercent,
	}

	s.log.Info().
		Str("source", source.Identifier()).
		Str("dest", dest.Identifier()).
		Str("amount", sourceAmount.String()).
		Str("dest_amount", path.DestinationAmount.String()).
		Str("dest_min", path.DestinationAmountMin.String()).
		Int("hops", len(path.Path)).
		Msg("path found")
	return path, nil
}

// MinimumReceived is floor(amount × (1 − slippage/100)) at the given decimals.
func MinimumReceived(amount, slippagePercent decimal.Decimal, decimals int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(slippagePercent.Div(hundred))
	return amount.Mul(factor).RoundFloor(int32(decimals))
}
