package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SecurityLevel classifies a scanned subject.
type SecurityLevel string

const (
	SecurityLevelSafe       SecurityLevel = "SAFE"
	SecurityLevelSuspicious SecurityLevel = "SUSPICIOUS"
	SecurityLevelMalicious  SecurityLevel = "MALICIOUS"
)

// Rank orders levels so the most severe wins: Malicious > Suspicious > Safe.
func (l SecurityLevel) Rank() int {
	switch l {
	case SecurityLevelMalicious:
		return 2
	case SecurityLevelSuspicious:
		return 1
	}
	return 0
}

// Provider result types.
const (
	ScanResultBenign    = "Benign"
	ScanResultWarning   = "Warning"
	ScanResultSpam      = "Spam"
	ScanResultMalicious = "Malicious"
)

// Site scan statuses.
const (
	SiteStatusHit  = "hit"
	SiteStatusMiss = "miss"
)

// Warning is a single human-readable finding.
type Warning struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SecurityVerdict is computed per scan and never persisted or reused for a
// changed subject.
type SecurityVerdict struct {
	Level        SecurityLevel `json:"level"`
	Warnings     []Warning     `json:"warnings"`
	Details      string        `json:"details,omitempty"`
	UnableToScan bool          `json:"unable_to_scan,omitempty"`
}

func (v SecurityVerdict) IsMalicious() bool  { return v.Level == SecurityLevelMalicious }
func (v SecurityVerdict) IsSuspicious() bool { return v.Level == SecurityLevelSuspicious }

// ScanFeature is one provider finding on an asset.
type ScanFeature struct {
	FeatureID   string `json:"feature_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// AssetScanResult is the provider payload for an asset scan.
type AssetScanResult struct {
	ResultType string        `json:"result_type"`
	Features   []ScanFeature `json:"features,omitempty"`
}

// AssetBulkScanResult is the provider payload for a bulk asset scan, keyed by
// the provider's asset address.
type AssetBulkScanResult struct {
	Results map[string]AssetScanResult `json:"results"`
}

// SiteScanResult is the provider payload for a site scan.
type SiteScanResult struct {
	Status      string `json:"status"`
	URL         string `json:"url,omitempty"`
	IsMalicious bool   `json:"is_malicious"`
}

// TransactionScanResult is the provider payload for a transaction scan.
type TransactionScanResult struct {
	Simulation *TxSimulation `json:"simulation,omitempty"`
	Validation *TxValidation `json:"validation,omitempty"`
}

// HasSimulationError reports whether the provider could not simulate the transaction.
func (r *TransactionScanResult) HasSimulationError() bool {
	return r != nil && r.Simulation != nil && r.Simulation.Error != ""
}

type TxSimulation struct {
	Error          string          `json:"error,omitempty"`
	AccountSummary *AccountSummary `json:"account_summary,omitempty"`
}

type AccountSummary struct {
	AccountAssetsDiffs []AssetDiff `json:"account_assets_diffs,omitempty"`
}

type AssetDiff struct {
	Asset DiffAsset  `json:"asset"`
	In    *DiffValue `json:"in,omitempty"`
	Out   *DiffValue `json:"out,omitempty"`
}

type DiffAsset struct {
	Type   string `json:"type"` // NATIVE or ASSET
	Code   string `json:"code"`
	Issuer string `json:"issuer,omitempty"`
}

// DiffValue carries a raw integer amount scaled by 1e7. The provider sends it
// as either a JSON number or a string.
type DiffValue struct {
	RawValue json.Number `json:"raw_value,omitempty"`
}

func (v *DiffValue) present() bool {
	return v != nil && v.RawValue != ""
}

// Raw returns the raw value and whether it was present.
func (v *DiffValue) Raw() (string, bool) {
	if !v.present() {
		return "", false
	}
	return v.RawValue.String(), true
}

type TxValidation struct {
	ResultType  string `json:"result_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// BalanceChange is one simulated per-asset delta.
type BalanceChange struct {
	AssetCode   string          `json:"asset_code"`
	AssetIssuer string          `json:"asset_issuer,omitempty"`
	IsNative    bool            `json:"is_native"`
	Amount      decimal.Decimal `json:"amount"`
	IsCredit    bool            `json:"is_credit"`
}

// GateReason explains why confirmation is gated.
type GateReason string

const (
	GateReasonNone          GateReason = ""
	GateReasonMalicious     GateReason = "malicious"
	GateReasonSuspicious    GateReason = "suspicious"
	GateReasonMemoRequired  GateReason = "memo_required"
	GateReasonMaliciousSite GateReason = "malicious_site"
)

// GateDecision is what the confirm action is allowed to do.
type GateDecision struct {
	Gated       bool          `json:"gated"`
	Reason      GateReason    `json:"reason,omitempty"`
	Level       SecurityLevel `json:"level"`
	Overridable bool          `json:"overridable"`
}
