package service

import (
	"stellar-wallet-core/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Warning ids surfaced to the confirm screen.
const (
	WarningSiteUnscanned       = "site-miss"
	WarningSiteMalicious       = "site-malicious"
	WarningSimulationError     = "simulation-error"
	WarningValidationWarning   = "validation-warning"
	WarningValidationMalicious = "validation-malicious"
	WarningUnableToScan        = "unable-to-scan"
	WarningMemoRequired        = "memo-required"
)

// resultLevels maps provider result types. Anything else is Safe: the asset
// policy is fail-open.
var resultLevels = map[string]domain.SecurityLevel{
	domain.ScanResultBenign:    domain.SecurityLevelSafe,
	domain.ScanResultWarning:   domain.SecurityLevelSuspicious,
	domain.ScanResultSpam:      domain.SecurityLevelSuspicious,
	domain.ScanResultMalicious: domain.SecurityLevelMalicious,
}

func levelFor(resultType string) domain.SecurityLevel {
	if level, ok := resultLevels[resultType]; ok {
		return level
	}
	return domain.SecurityLevelSafe
}

// AssessAsset classifies an asset scan. A nil result is Safe.
func AssessAsset(r *domain.AssetScanResult) domain.SecurityVerdict {
	if r == nil {
		return safeVerdict()
	}
	return domain.SecurityVerdict{
		Level:    levelFor(r.ResultType),
		Warnings: assetWarnings(r),
	}
}

// AssessSite classifies a site scan: miss is Safe, a malicious hit is
// Malicious and any other hit is Suspicious.
func AssessSite(r *domain.SiteScanResult) domain.SecurityVerdict {
	if r == nil {
		return safeVerdict()
	}
	v := domain.SecurityVerdict{Level: domain.SecurityLevelSafe, Warnings: siteWarnings(r)}
	if r.Status == domain.SiteStatusHit {
		v.Level = domain.SecurityLevelSuspicious
		if r.IsMalicious {
			v.Level = domain.SecurityLevelMalicious
		}
	}
	return v
}

// AssessTransaction classifies a transaction scan. A simulation error takes
// precedence over the validation result.
func AssessTransaction(r *domain.TransactionScanResult) domain.SecurityVerdict {
	if r == nil {
		return safeVerdict()
	}
	v := domain.SecurityVerdict{Level: domain.SecurityLevelSafe, Warnings: transactionWarnings(r)}
	switch {
	case r.HasSimulationError():
		v.Level = domain.SecurityLevelSuspicious
		v.Details = r.Simulation.Error
	case r.Validation != nil:
		v.Level = levelFor(r.Validation.ResultType)
		v.Details = r.Validation.Description
	}
	return v
}

// ExtractWarnings collects the findings of every available scan, in
// site, asset, transaction order.
func ExtractWarnings(asset *domain.AssetScanResult, site *domain.SiteScanResult, tx *domain.TransactionScanResult) []domain.Warning {
	out := make([]domain.Warning, 0)
	if site != nil {
		out = append(out, siteWarnings(site)...)
	}
	if asset != nil {
		out = append(out, assetWarnings(asset)...)
	}
	if tx != nil {
		out = append(out, transactionWarnings(tx)...)
	}
	return out
}

func siteWarnings(r *domain.SiteScanResult) []domain.Warning {
	switch {
	case r.Status == domain.SiteStatusMiss:
		return []domain.Warning{{ID: WarningSiteUnscanned, Description: "This site has not been scanned"}}
	case r.IsMalicious:
		return []domain.Warning{{ID: WarningSiteMalicious, Description: "This site was flagged as malicious"}}
	}
	return []domain.Warning{}
}

func assetWarnings(r *domain.AssetScanResult) []domain.Warning {
	out := make([]domain.Warning, 0, len(r.Features))
	for _, f := range r.Features {
		if f.Type == domain.ScanResultBenign {
			continue
		}
		out = append(out, domain.Warning{ID: f.FeatureID, Description: f.Description})
	}
	return out
}

func transactionWarnings(r *domain.TransactionScanResult) []domain.Warning {
	out := make([]domain.Warning, 0)
	if r.HasSimulationError() {
		out = append(out, domain.Warning{ID: WarningSimulationError, Description: r.Simulation.Error})
	}
	if r.Validation != nil {
		switch levelFor(r.Validation.ResultType) {
		case domain.SecurityLevelMalicious:
			out = append(out, domain.Warning{ID: WarningValidationMalicious, Description: r.Validation.Description})
		case domain.SecurityLevelSuspicious:
			out = append(out, domain.Warning{ID: WarningValidationWarning, Description: r.Validation.Description})
		}
	}
	return out
}

// BalanceChanges converts simulated asset diffs to decimal deltas. It returns
// nil when no successful simulation is available.
func BalanceChanges(r *domain.TransactionScanResult) []domain.BalanceChange {
	if r == nil || r.Simulation == nil || r.HasSimulationError() || r.Simulation.AccountSummary == nil {
		return nil
	}

	out := make([]domain.BalanceChange, 0, len(r.Simulation.AccountSummary.AccountAssetsDiffs))
	for _, diff := range r.Simulation.AccountSummary.AccountAssetsDiffs {
		if c, ok := balanceChange(diff, diff.In, true); ok {
			out = append(out, c)
		}
		if c, ok := balanceChange(diff, diff.Out, false); ok {
			out = append(out, c)
		}
	}
	return out
}

func balanceChange(diff domain.AssetDiff, value *domain.DiffValue, credit bool) (domain.BalanceChange, bool) {
	raw, ok := value.Raw()
	if !ok {
		return domain.BalanceChange{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.BalanceChange{}, false
	}

	native := diff.Asset.Type == "NATIVE"
	code := diff.Asset.Code
	if native {
		code = "XLM"
	}
	return domain.BalanceChange{
		AssetCode:   code,
		AssetIssuer: diff.Asset.Issuer,
		IsNative:    native,
		Amount:      amount.Shift(-domain.ClassicDecimals),
		IsCredit:    credit,
	}, true
}

// GateInput is everything that can gate a confirm action.
type GateInput struct {
	Verdicts            []domain.SecurityVerdict // transaction and asset verdicts
	Site                *domain.SecurityVerdict
	MemoRequiredMissing bool
}

// Gate picks the single most severe reason: Malicious, then Suspicious, then a
// missing required memo. A malicious site cannot be overridden and neither can
// a missing memo.
func Gate(in GateInput) domain.GateDecision {
	level := domain.SecurityLevelSafe
	for _, v := range in.Verdicts {
		if v.Level.Rank() > level.Rank() {
			level = v.Level
		}
	}
	siteMalicious := in.Site != nil && in.Site.IsMalicious()
	if in.Site != nil && in.Site.Level.Rank() > level.Rank() {
		level = in.Site.Level
	}

	decision := domain.GateDecision{Level: level}
	switch {
	case siteMalicious:
		decision.Gated, decision.Reason = true, domain.GateReasonMaliciousSite
	case level == domain.SecurityLevelMalicious:
		decision.Gated, decision.Reason, decision.Overridable = true, domain.GateReasonMalicious, true
	case level == domain.SecurityLevelSuspicious:
		decision.Gated, decision.Reason, decision.Overridable = true, domain.GateReasonSuspicious, true
	case in.MemoRequiredMissing:
		decision.Gated, decision.Reason = true, domain.GateReasonMemoRequired
	}
	return decision
}

func safeVerdict() domain.SecurityVerdict {
	return domain.SecurityVerdict{Level: domain.SecurityLevelSafe, Warnings: []domain.Warning{}}
}

func unableToScan(reason string) domain.SecurityVerdict {
	return domain.SecurityVerdict{
		Level:        domain.SecurityLevelSafe,
		Warnings:     []domain.Warning{{ID: WarningUnableToScan, Description: reason}},
		UnableToScan: true,
	}
}
