package domain

// MemoRequiredDataKey is the account data entry marking a destination that
// requires a memo on incoming payments.
const MemoRequiredDataKey = "config.memo_required"

// Account is a network account as loaded immediately before a build.
// It is never shared across builds.
type Account struct {
	Address       string            `json:"address"`
	Sequence      int64             `json:"sequence"`
	SubentryCount int32             `json:"subentry_count"`
	Balances      []Balance         `json:"balances"`
	Data          map[string][]byte `json:"-"`
}

// MemoRequired reports whether the account asks senders for a memo.
func (a *Account) MemoRequired() bool {
	if a == nil {
		return false
	}
	return string(a.Data[MemoRequiredDataKey]) == "1"
}

// Balance returns the account's balance of asset.
func (a *Account) Balance(asset Asset) (Balance, bool) {
	return FindBalance(a.Balances, asset)
}
