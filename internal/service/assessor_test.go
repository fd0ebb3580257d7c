package service

import (
	"encoding/json"
	"testing"

	"stellar-wallet-core/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessAsset(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.AssetScanResult
		want   domain.SecurityLevel
	}{
		{"nil is safe", nil, domain.SecurityLevelSafe},
		{"benign", &domain.AssetScanResult{ResultType: "Benign"}, domain.SecurityLevelSafe},
		{"warning", &domain.AssetScanResult{ResultType: "Warning"}, domain.SecurityLevelSuspicious},
		{"spam", &domain.AssetScanResult{ResultType: "Spam"}, domain.SecurityLevelSuspicious},
		{"malicious", &domain.AssetScanResult{ResultType: "Malicious"}, domain.SecurityLevelMalicious},
		{"unknown type fails open", &domain.AssetScanResult{ResultType: "Scam"}, domain.SecurityLevelSafe},
		{"empty type fails open", &domain.AssetScanResult{}, domain.SecurityLevelSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessAsset(tt.result).Level)
		})
	}
}

func TestAssessAsset_FeatureWarnings(t *testing.T) {
	v := AssessAsset(&domain.AssetScanResult{
		ResultType: "Warning",
		Features: []domain.ScanFeature{
			{FeatureID: "METADATA", Type: "Benign", Description: "has metadata"},
			{FeatureID: "AIRDROP_PATTERN", Type: "Warning", Description: "unsolicited airdrop"},
		},
	})
	assert.Equal(t, []domain.Warning{{ID: "AIRDROP_PATTERN", Description: "unsolicited airdrop"}}, v.Warnings)
}

func TestAssessSite(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.SiteScanResult
		want   domain.SecurityLevel
		warn   string
	}{
		{"nil", nil, domain.SecurityLevelSafe, ""},
		{"miss", &domain.SiteScanResult{Status: "miss"}, domain.SecurityLevelSafe, WarningSiteUnscanned},
		{"hit malicious", &domain.SiteScanResult{Status: "hit", IsMalicious: true}, domain.SecurityLevelMalicious, WarningSiteMalicious},
		{"hit benign", &domain.SiteScanResult{Status: "hit"}, domain.SecurityLevelSuspicious, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := AssessSite(tt.result)
			assert.Equal(t, tt.want, v.Level)
			if tt.warn == "" {
				assert.Empty(t, v.Warnings)
			} else {
				require.Len(t, v.Warnings, 1)
				assert.Equal(t, tt.warn, v.Warnings[0].ID)
			}
		})
	}
}

func TestAssessTransaction(t *testing.T) {
	simErr := &domain.TxSimulation{Error: "op_underfunded"}

	tests := []struct {
		name   string
		result *domain.TransactionScanResult
		want   domain.SecurityLevel
	}{
		{"nil", nil, domain.SecurityLevelSafe},
		{"no validation", &domain.TransactionScanResult{}, domain.SecurityLevelSafe},
		{"benign", &domain.TransactionScanResult{Validation: &domain.TxValidation{ResultType: "Benign"}}, domain.SecurityLevelSafe},
		{"warning", &domain.TransactionScanResult{Validation: &domain.TxValidation{ResultType: "Warning"}}, domain.SecurityLevelSuspicious},
		{"malicious", &domain.TransactionScanResult{Validation: &domain.TxValidation{ResultType: "Malicious"}}, domain.SecurityLevelMalicious},
		{"unknown", &domain.TransactionScanResult{Validation: &domain.TxValidation{ResultType: "???"}}, domain.SecurityLevelSafe},
		{"simulation error alone", &domain.TransactionScanResult{Simulation: simErr}, domain.SecurityLevelSuspicious},
		{
			"simulation error takes precedence over malicious validation",
			&domain.TransactionScanResult{Simulation: simErr, Validation: &domain.TxValidation{ResultType: "Malicious"}},
			domain.SecurityLevelSuspicious,
		},
		{
			"simulation error takes precedence over benign validation",
			&domain.TransactionScanResult{Simulation: simErr, Validation: &domain.TxValidation{ResultType: "Benign"}},
			domain.SecurityLevelSuspicious,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssessTransaction(tt.result).Level)
		})
	}
}

func TestExtractWarnings(t *testing.T) {
	warnings := ExtractWarnings(
		&domain.AssetScanResult{Features: []domain.ScanFeature{{FeatureID: "IMPERSONATOR", Type: "Malicious", Description: "copies USDC"}}},
		&domain.SiteScanResult{Status: "miss"},
		&domain.TransactionScanResult{
			Simulation: &domain.TxSimulation{Error: "bad auth"},
			Validation: &domain.TxValidation{ResultType: "Malicious", Description: "drainer"},
		},
	)

	ids := make([]string, 0, len(warnings))
	for _, w := range warnings {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{WarningSiteUnscanned, "IMPERSONATOR", WarningSimulationError, WarningValidationMalicious}, ids)

	assert.Empty(t, ExtractWarnings(nil, nil, nil))
}

func TestBalanceChanges(t *testing.T) {
	var result domain.TransactionScanResult
	payload := `{"simulation":{"account_summary":{"account_assets_diffs":[
		{"asset":{"type":"NATIVE","code":"XLM"},"out":{"raw_value":105000000}},
		{"asset":{"type":"ASSET","code":"USDC","issuer":"GISSUER"},"in":{"raw_value":"12345678"}}
	]}}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	changes := BalanceChanges(&result)
	require.Len(t, changes, 2)

	assert.Equal(t, "XLM", changes[0].AssetCode)
	assert.True(t, changes[0].IsNative)
	assert.False(t, changes[0].IsCredit)
	assert.Equal(t, "10.5", changes[0].Amount.String())

	assert.Equal(t, "USDC", changes[1].AssetCode)
	assert.Equal(t, "GISSUER", changes[1].AssetIssuer)
	assert.True(t, changes[1].IsCredit)
	assert.Equal(t, "1.2345678", changes[1].Amount.String())
}

func TestBalanceChanges_UnavailableSimulation(t *testing.T) {
	assert.Nil(t, BalanceChanges(nil))
	assert.Nil(t, BalanceChanges(&domain.TransactionScanResult{}))
	assert.Nil(t, BalanceChanges(&domain.TransactionScanResult{Simulation: &domain.TxSimulation{Error: "failed"}}))
}

func TestGate(t *testing.T) {
	safe := domain.SecurityVerdict{Level: domain.SecurityLevelSafe}
	suspicious := domain.SecurityVerdict{Level: domain.SecurityLevelSuspicious}
	malicious := domain.SecurityVerdict{Level: domain.SecurityLevelMalicious}

	tests := []struct {
		name string
		in   GateInput
		want domain.GateDecision
	}{
		{
			"all safe",
			GateInput{Verdicts: []domain.SecurityVerdict{safe}},
			domain.GateDecision{Level: domain.SecurityLevelSafe},
		},
		{
			"malicious beats suspicious and memo",
			GateInput{Verdicts: []domain.SecurityVerdict{suspicious, malicious}, MemoRequiredMissing: true},
			domain.GateDecision{Gated: true, Reason: domain.GateReasonMalicious, Level: domain.SecurityLevelMalicious, Overridable: true},
		},
		{
			"suspicious beats memo",
			GateInput{Verdicts: []domain.SecurityVerdict{suspicious}, MemoRequiredMissing: true},
			domain.GateDecision{Gated: true, Reason: domain.GateReasonSuspicious, Level: domain.SecurityLevelSuspicious, Overridable: true},
		},
		{
			"memo required missing",
			GateInput{Verdicts: []domain.SecurityVerdict{safe}, MemoRequiredMissing: true},
			domain.GateDecision{Gated: true, Reason: domain.GateReasonMemoRequired, Level: domain.SecurityLevelSafe},
		},
		{
			"malicious site is not overridable",
			GateInput{Verdicts: []domain.SecurityVerdict{safe}, Site: &malicious},
			domain.GateDecision{Gated: true, Reason: domain.GateReasonMaliciousSite, Level: domain.SecurityLevelMalicious},
		},
		{
			"suspicious site",
			GateInput{Verdicts: []domain.SecurityVerdict{safe}, Site: &suspicious},
			domain.GateDecision{Gated: true, Reason: domain.GateReasonSuspicious, Level: domain.SecurityLevelSuspicious, Overridable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.in))
		})
	}
}
