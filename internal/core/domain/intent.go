package domain

import "github.com/shopspring/decimal"

// MaxMemoTextBytes is the network limit for a text memo.
const MaxMemoTextBytes = 28

// TransactionIntent is the user's request to move an asset. It lives for a
// single build.
type TransactionIntent struct {
	Source         string
	Destination    string
	Asset          Asset
	Amount         decimal.Decimal
	Memo           string
	Fee            decimal.Decimal // XLM per operation
	TimeoutSeconds int64
}

// SwapIntent converts along a previously found path back into the source account.
type SwapIntent struct {
	Source         string
	Path           *SwapPath
	Memo           string
	Fee            decimal.Decimal
	TimeoutSeconds int64
}

// TrustlineIntent adds, updates or removes a trustline.
type TrustlineIntent struct {
	Source         string
	Asset          Asset
	Limit          *decimal.Decimal // nil means the maximum limit
	Remove         bool
	Fee            decimal.Decimal
	TimeoutSeconds int64
}
