// Package dto holds the JSON request and response bodies of the wallet API and
// their conversion to domain intents.
package dto

import (
	"strings"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Defaults fills fields an intent request leaves empty.
type Defaults struct {
	Fee             decimal.Decimal
	TimeoutSeconds  int64
	SlippagePercent decimal.Decimal
}

// SessionRequest exchanges the device passcode for a session token.
type SessionRequest struct {
	Passcode string `json:"passcode" binding:"required,max=128"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// StoreKeyRequest imports a secret seed under key_id, sealed with passphrase.
type StoreKeyRequest struct {
	KeyID      string `json:"key_id" binding:"required,key_id"`
	SecretSeed string `json:"secret_seed" binding:"required"`
	Passphrase string `json:"passphrase" binding:"required,max=128"`
}

type KeyURI struct {
	ID string `uri:"id" binding:"required,key_id"`
}

type KeyResponse struct {
	KeyID   string `json:"key_id"`
	Address string `json:"address,omitempty"`
	Exists  bool   `json:"exists"`
}

type AccountURI struct {
	Address string `uri:"address" binding:"required,stellar_address"`
}

// PaymentRequest builds a payment, or a create-account when a native payment
// targets an unfunded destination.
type PaymentRequest struct {
	Source         string `json:"source" binding:"required"`
	Destination    string `json:"destination" binding:"required"`
	Asset          string `json:"asset" binding:"omitempty,asset_id"`                  // default native
	Decimals       *int   `json:"decimals,omitempty" binding:"omitempty,min=0,max=38"` // contract tokens only, default 7
	Amount         string `json:"amount" binding:"required"`
	Memo           string `json:"memo,omitempty"`
	Fee            string `json:"fee,omitempty"`
	TimeoutSeconds int64  `json:"timeout_seconds,omitempty"`
}

// ToIntent converts the request. Range checks stay with the builder so the
// caller sees the builder's error codes.
func (r PaymentRequest) ToIntent(d Defaults) (domain.TransactionIntent, error) {
	asset := domain.NativeAsset()
	if r.Asset != "" {
		parsed, err := domain.ParseAsset(r.Asset)
		if err != nil {
			return domain.TransactionIntent{}, apperror.ErrInvalidAsset(err.Error())
		}
		asset = parsed
	}
	if asset.Kind == domain.AssetKindContract {
		decimals := domain.ClassicDecimals
		if r.Decimals != nil {
			decimals = *r.Decimals
		}
		token, err := domain.NewContractToken(asset.ContractID, decimals)
		if err != nil {
			return domain.TransactionIntent{}, apperror.ErrInvalidAsset(err.Error())
		}
		asset = token
	}
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return domain.TransactionIntent{}, err
	}
	fee, err := parseFee(r.Fee, d)
	if err != nil {
		return domain.TransactionIntent{}, err
	}
	return domain.TransactionIntent{
		Source:         strings.TrimSpace(r.Source),
		Destination:    strings.TrimSpace(r.Destination),
		Asset:          asset,
		Amount:         amount,
		Memo:           r.Memo,
		Fee:            fee,
		TimeoutSeconds: timeoutOrDefault(r.TimeoutSeconds, d),
	}, nil
}

// TrustlineRequest adds or removes a trustline. An empty limit means the maximum.
type TrustlineRequest struct {
	Source         string `json:"source" binding:"required"`
	Asset          string `json:"asset" binding:"required,asset_id"`
	Limit          string `json:"limit,omitempty"`
	Remove         bool   `json:"remove"`
	Fee            string `json:"fee,omitempty"`
	TimeoutSeconds int64  `json:"timeout_seconds,omitempty"`
}

func (r TrustlineRequest) ToIntent(d Defaults) (domain.TrustlineIntent, error) {
	asset, err := domain.ParseAsset(r.Asset)
	if err != nil {
		return domain.TrustlineIntent{}, apperror.ErrInvalidAsset(err.Error())
	}
	fee, err := parseFee(r.Fee, d)
	if err != nil {
		return domain.TrustlineIntent{}, err
	}
	intent := domain.TrustlineIntent{
		Source:         strings.TrimSpace(r.Source),
		Asset:          asset,
		Remove:         r.Remove,
		Fee:            fee,
		TimeoutSeconds: timeoutOrDefault(r.TimeoutSeconds, d),
	}
	if r.Limit != "" {
		limit, err := parseAmount(r.Limit)
		if err != nil {
			return domain.TrustlineIntent{}, err
		}
		intent.Limit = &limit
	}
	return intent, nil
}

// QuoteRequest asks for the best strict-send path.
type QuoteRequest struct {
	SourceAsset     string `json:"source_asset" binding:"required,asset_id"`
	DestAsset       string `json:"dest_asset" binding:"required,asset_id"`
	SourceAmount    string `json:"source_amount" binding:"required,decimal_amount"`
	SlippagePercent string `json:"slippage_percent,omitempty"`
}

// Quote is the parsed form of QuoteRequest.
type Quote struct {
	Source, Dest domain.Asset
	Amount       decimal.Decimal
	Slippage     decimal.Decimal
}

func (r QuoteRequest) Parse(d Defaults) (Quote, error) {
	src, err := domain.ParseAsset(r.SourceAsset)
	if err != nil {
		return Quote{}, apperror.ErrInvalidAsset(err.Error())
	}
	dst, err := domain.ParseAsset(r.DestAsset)
	if err != nil {
		return Quote{}, apperror.ErrInvalidAsset(err.Error())
	}
	amount, err := parseAmount(r.SourceAmount)
	if err != nil {
		return Quote{}, err
	}
	slippage := d.SlippagePercent
	if r.SlippagePercent != "" {
		slippage, err = decimal.NewFromString(r.SlippagePercent)
		if err != nil {
			return Quote{}, apperror.ErrInvalidSlippage()
		}
	}
	return Quote{Source: src, Dest: dst, Amount: amount, Slippage: slippage}, nil
}

// SwapRequest finds a path and builds a self path payment along it.
type SwapRequest struct {
	QuoteRequest
	Source         string `json:"source" binding:"required"`
	Memo           string `json:"memo,omitempty"`
	Fee            string `json:"fee,omitempty"`
	TimeoutSeconds int64  `json:"timeout_seconds,omitempty"`
}

// ToIntent completes a swap intent for an already found path.
func (r SwapRequest) ToIntent(path *domain.SwapPath, d Defaults) (domain.SwapIntent, error) {
	fee, err := parseFee(r.Fee, d)
	if err != nil {
		return domain.SwapIntent{}, err
	}
	return domain.SwapIntent{
		Source:         strings.TrimSpace(r.Source),
		Path:           path,
		Memo:           r.Memo,
		Fee:            fee,
		TimeoutSeconds: timeoutOrDefault(r.TimeoutSeconds, d),
	}, nil
}

type AssetScanRequest struct {
	Asset string `json:"asset" binding:"required,asset_id"`
}

type AssetsScanRequest struct {
	Assets []string `json:"assets" binding:"required,min=1,max=50,dive,asset_id"`
}

// ToAssets parses every identifier in request order.
func (r AssetsScanRequest) ToAssets() ([]domain.Asset, error) {
	assets := make([]domain.Asset, 0, len(r.Assets))
	for _, id := range r.Assets {
		a, err := domain.ParseAsset(id)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

type SiteScanRequest struct {
	URL string `json:"url" binding:"required,safe_url"`
}

type TransactionScanRequest struct {
	XDR         string `json:"xdr" binding:"required"`
	SiteURL     string `json:"site_url,omitempty" binding:"omitempty,safe_url"`
	Destination string `json:"destination,omitempty"`
	Memo        string `json:"memo,omitempty"`
}

// SignRequest signs an unsigned envelope with a stored key.
type SignRequest struct {
	KeyID      string `json:"key_id" binding:"required,key_id"`
	Passphrase string `json:"passphrase" binding:"required,max=128"`
	XDR        string `json:"xdr" binding:"required"`
}

type SubmitRequest struct {
	XDR string `json:"xdr" binding:"required"`
}

// SendRequest runs the full lock, build, assess, sign and submit flow.
type SendRequest struct {
	PaymentRequest
	KeyID            string `json:"key_id" binding:"required,key_id"`
	Passphrase       string `json:"passphrase" binding:"required,max=128"`
	SiteURL          string `json:"site_url,omitempty" binding:"omitempty,safe_url"`
	OverrideWarnings bool   `json:"override_warnings"`
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := domain.ParseAmount(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	return d, nil
}

func parseFee(s string, d Defaults) (decimal.Decimal, error) {
	if s == "" {
		return d.Fee, nil
	}
	fee, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidFee()
	}
	return fee, nil
}

func timeoutOrDefault(v int64, d Defaults) int64 {
	if v == 0 {
		return d.TimeoutSeconds
	}
	return v
}
