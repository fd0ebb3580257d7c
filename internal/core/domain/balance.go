package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance is one Account's holding of one Asset.
type Balance struct {
	Asset              Asset            `json:"asset"`
	Total              decimal.Decimal  `json:"total"`
	Available          decimal.Decimal  `json:"available"`
	Limit              *decimal.Decimal `json:"limit,omitempty"`
	MinimumBalance     *decimal.Decimal `json:"minimum_balance,omitempty"`
	BuyingLiabilities  decimal.Decimal  `json:"buying_liabilities"`
	SellingLiabilities decimal.Decimal  `json:"selling_liabilities"`
	LiquidityPoolID    string           `json:"liquidity_pool_id,omitempty"`
}

// NewBalance enforces available <= total.
func NewBalance(asset Asset, total, available decimal.Decimal) (Balance, error) {
	if available.GreaterThan(total) {
		return Balance{}, fmt.Errorf("available %s exceeds total %s for %s", available, total, asset.Identifier())
	}
	return Balance{Asset: asset, Total: total, Available: available}, nil
}

// IsLiquidityPool reports whether the balance holds liquidity pool shares.
func (b Balance) IsLiquidityPool() bool {
	return b.LiquidityPoolID != "" || b.Asset.Kind == AssetKindPoolShare
}

// FindBalance returns the non-pool balance holding asset.
func FindBalance(balances []Balance, asset Asset) (Balance, bool) {
	for _, b := range balances {
		if b.IsLiquidityPool() {
			continue
		}
		if b.Asset.Equal(asset) {
			return b, true
		}
	}
	return Balance{}, false
}

// HasTrustline reports whether balances allow holding asset. The native asset
// never needs a trustline.
func HasTrustline(balances []Balance, asset Asset) bool {
	if asset.IsNative() {
		return true
	}
	_, ok := FindBalance(balances, asset)
	return ok
}
