package service

import (
	"context"
	"errors"
	"testing"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPathFinderFixture(t *testing.T) (*PathFinderService, *mocks.MockNetworkService) {
	ctrl := gomock.NewController(t)
	network := mocks.NewMockNetworkService(ctrl)
	return NewPathFinderService(network, newTestLogger()), network
}

func TestFindPath_XLMToUSDCWithOnePercentSlippage(t *testing.T) {
	svc, network := newPathFinderFixture(t)
	ctx := context.Background()
	usdc, err := domain.NewIssuedAsset("USDC", keypair.MustRandom().Address())
	require.NoError(t, err)
	yxlm, err := domain.NewIssuedAsset("yXLM", keypair.MustRandom().Address())
	require.NoError(t, err)

	network.EXPECT().FindStrictSendPaths(ctx, domain.NativeAsset(), dec("50"), usdc).Return([]domain.PathQuote{
		{SourceAmount: dec("50"), DestinationAmount: dec("100.1234567"), Path: []domain.Asset{yxlm}},
		{SourceAmount: dec("50"), DestinationAmount: dec("99"), Path: nil},
	}, nil)

	path, err := svc.FindPath(ctx, domain.NativeAsset(), usdc, dec("50"), dec("1"))
	require.NoError(t, err)
	require.NotNil(t, path)

	assert.True(t, path.DestinationAmount.Equal(dec("100.1234567")), "first record wins")
	assert.Equal(t, "99.1222221", path.DestinationAmountMin.String())
	assert.Equal(t, "2.0024691", path.ConversionRate.String())
	assert.Equal(t, []domain.Asset{yxlm}, path.Path)
	assert.True(t, path.SlippagePercent.Equal(dec("1")))
}

func TestFindPath_NoRecords(t *testing.T) {
	svc, network := newPathFinderFixture(t)
	usdc, _ := domain.NewIssuedAsset("USDC", keypair.MustRandom().Address())
	network.EXPECT().FindStrictSendPaths(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	path, err := svc.FindPath(context.Background(), domain.NativeAsset(), usdc, dec("1"), dec("1"))
	assert.NoError(t, err)
	assert.Nil(t, path)
}

func TestFindPath_Errors(t *testing.T) {
	usdc, _ := domain.NewIssuedAsset("USDC", keypair.MustRandom().Address())

	tests := []struct {
		name     string
		dest     domain.Asset
		amount   string
		slippage string
		network  error
		wantCode string
	}{
		{"same asset", domain.NativeAsset(), "1", "1", nil, "VAL_007"},
		{"negative slippage", usdc, "1", "-0.1", nil, "VAL_009"},
		{"slippage above 100", usdc, "1", "100.01", nil, "VAL_009"},
		{"zero amount", usdc, "0", "1", nil, "VAL_004"},
		{"network failure", usdc, "1", "1", errors.New("horizon 503"), "NET_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, network := newPathFinderFixture(t)
			if tt.network != nil {
				network.EXPECT().FindStrictSendPaths(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.network)
			}
			_, err := svc.FindPath(context.Background(), domain.NativeAsset(), tt.dest, dec(tt.amount), dec(tt.slippage))
			assertAppError(t, err, tt.wantCode)
		})
	}
}

func TestMinimumReceived(t *testing.T) {
	amount := dec("123.4567891")
	for s := 0; s <= 100; s += 5 {
		slippage := decimal.NewFromInt(int64(s))
		min := MinimumReceived(amount, slippage, 7)

		assert.True(t, min.LessThanOrEqual(amount), "slippage %d", s)
		assert.False(t, min.IsNegative(), "slippage %d", s)
		assert.True(t, domain.FitsPrecision(min, 7), "slippage %d", s)
		want := amount.Mul(decimal.NewFromInt(int64(100 - s))).Div(decimal.NewFromInt(100))
		assert.True(t, min.LessThanOrEqual(want), "floor never rounds up at slippage %d", s)
	}

	assert.True(t, MinimumReceived(amount, decimal.Zero, 7).Equal(amount))
	assert.True(t, MinimumReceived(amount, decimal.NewFromInt(100), 7).IsZero())
	assert.Equal(t, "1.99", MinimumReceived(dec("2.0099"), dec("0.5"), 2).String())
}
