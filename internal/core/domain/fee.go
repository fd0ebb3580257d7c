package domain

import "github.com/shopspring/decimal"

// CongestionLevel buckets ledger capacity usage.
type CongestionLevel string

const (
	CongestionLow    CongestionLevel = "LOW"
	CongestionMedium CongestionLevel = "MEDIUM"
	CongestionHigh   CongestionLevel = "HIGH"
)

// DefaultRecommendedFee is used whenever fee stats cannot be fetched.
var DefaultRecommendedFee = decimal.RequireFromString("0.00001")

// NetworkFeeStats is the subset of the network's fee statistics the wallet uses.
type NetworkFeeStats struct {
	LastLedgerBaseFee   int64
	LedgerCapacityUsage float64
	MaxFeeMode          int64 // stroops
}

// FeeRecommendation is what the wallet proposes to the user.
type FeeRecommendation struct {
	RecommendedFee decimal.Decimal `json:"recommended_fee"` // XLM
	Congestion     CongestionLevel `json:"congestion"`
}

// CongestionFromCapacity maps usage: <= 0.5 LOW, <= 0.75 MEDIUM, else HIGH.
func CongestionFromCapacity(usage float64) CongestionLevel {
	switch {
	case usage <= 0.5:
		return CongestionLow
	case usage <= 0.75:
		return CongestionMedium
	}
	return CongestionHigh
}
