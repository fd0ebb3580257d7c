package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stellar/go/strkey"
)

// ClassicDecimals is the fixed precision of native and issued assets.
const ClassicDecimals = 7

// NativeIdentifier is the canonical identifier of the network's native asset.
const NativeIdentifier = "native"

var assetCodeRe = regexp.MustCompile(`^[a-zA-Z0-9]{1,12}$`)

// AssetKind tags the Asset variant.
type AssetKind string

const (
	AssetKindNative    AssetKind = "native"
	AssetKindIssued    AssetKind = "issued"
	AssetKindContract  AssetKind = "contract"
	AssetKindPoolShare AssetKind = "liquidity_pool_shares"
)

// Asset is a tagged variant: Native, Issued{Code, Issuer},
// ContractToken{ContractID, TokenDecimals} or a liquidity pool share.
type Asset struct {
	Kind          AssetKind `json:"kind"`
	Code          string    `json:"code,omitempty"`
	Issuer        string    `json:"issuer,omitempty"`
	ContractID    string    `json:"contract_id,omitempty"`
	TokenDecimals int       `json:"decimals,omitempty"`
	PoolID        string    `json:"pool_id,omitempty"`
}

// NativeAsset returns the native asset (XLM).
func NativeAsset() Asset {
	return Asset{Kind: AssetKindNative}
}

// NewIssuedAsset validates and returns an issued asset.
func NewIssuedAsset(code, issuer string) (Asset, error) {
	if !assetCodeRe.MatchString(code) {
		return Asset{}, fmt.Errorf("asset code %q must be 1-12 alphanumeric characters", code)
	}
	if !strkey.IsValidEd25519PublicKey(issuer) {
		return Asset{}, fmt.Errorf("asset issuer %q is not a valid account address", issuer)
	}
	return Asset{Kind: AssetKindIssued, Code: code, Issuer: issuer}, nil
}

// NewContractToken validates and returns a contract token.
func NewContractToken(contractID string, decimals int) (Asset, error) {
	if !IsValidContractID(contractID) {
		return Asset{}, fmt.Errorf("contract id %q is not valid", contractID)
	}
	if decimals < 0 || decimals > 38 {
		return Asset{}, fmt.Errorf("contract token decimals %d out of range", decimals)
	}
	return Asset{Kind: AssetKindContract, ContractID: contractID, TokenDecimals: decimals}, nil
}

// PoolShareAsset returns the asset held by a liquidity pool share balance.
func PoolShareAsset(poolID string) Asset {
	return Asset{Kind: AssetKindPoolShare, PoolID: poolID}
}

// ParseAsset is the inverse of Identifier for native, issued and contract assets.
func ParseAsset(identifier string) (Asset, error) {
	switch {
	case identifier == NativeIdentifier || strings.EqualFold(identifier, "XLM"):
		return NativeAsset(), nil
	case strings.Contains(identifier, ":"):
		parts := strings.SplitN(identifier, ":", 2)
		return NewIssuedAsset(parts[0], parts[1])
	case IsValidContractID(identifier):
		// decimals are unknown until the token is queried
		return Asset{Kind: AssetKindContract, ContractID: identifier}, nil
	}
	return Asset{}, fmt.Errorf("unrecognized asset identifier %q", identifier)
}

// Identifier returns the canonical identifier: native, CODE:ISSUER, the contract id,
// or POOLID:lp for pool shares.
func (a Asset) Identifier() string {
	switch a.Kind {
	case AssetKindNative:
		return NativeIdentifier
	case AssetKindIssued:
		return a.Code + ":" + a.Issuer
	case AssetKindContract:
		return a.ContractID
	case AssetKindPoolShare:
		return a.PoolID + ":lp"
	}
	return ""
}

// Decimals returns 7 for classic assets and the token's own precision for contracts.
func (a Asset) Decimals() int {
	if a.Kind == AssetKindContract {
		return a.TokenDecimals
	}
	return ClassicDecimals
}

// Equal compares assets structurally.
func (a Asset) Equal(other Asset) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case AssetKindNative:
		return true
	case AssetKindIssued:
		return a.Code == other.Code && a.Issuer == other.Issuer
	case AssetKindContract:
		return a.ContractID == other.ContractID
	case AssetKindPoolShare:
		return a.PoolID == other.PoolID
	}
	return false
}

func (a Asset) IsNative() bool  { return a.Kind == AssetKindNative }
func (a Asset) IsClassic() bool { return a.Kind == AssetKindNative || a.Kind == AssetKindIssued }

// DisplayCode returns XLM for native and the asset code otherwise.
func (a Asset) DisplayCode() string {
	switch a.Kind {
	case AssetKindNative:
		return "XLM"
	case AssetKindContract:
		return a.ContractID
	}
	return a.Code
}

func (a Asset) String() string { return a.Identifier() }

// IsValidContractID reports whether id is a C... contract strkey.
func IsValidContractID(id string) bool {
	if !strings.HasPrefix(id, "C") {
		return false
	}
	_, err := strkey.Decode(strkey.VersionByteContract, id)
	return err == nil
}
