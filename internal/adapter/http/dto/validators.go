package dto

import (
	"net/url"
	"regexp"

	"stellar-wallet-core/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var keyIDRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the wallet's custom tags to v.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("stellar_address", validateStellarAddress)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("asset_id", validateAssetID)
	_ = v.RegisterValidation("key_id", validateKeyID)
	_ = v.RegisterValidation("safe_url", validateSafeURL)
}

// validateStellarAddress accepts G- and M-addresses.
func validateStellarAddress(fl validator.FieldLevel) bool {
	return domain.IsValidAccountAddress(fl.Field().String())
}

// validateDecimalAmount accepts a positive decimal with at most seven places.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && domain.FitsPrecision(d, domain.ClassicDecimals)
}

func validateAssetID(fl validator.FieldLevel) bool {
	_, err := domain.ParseAsset(fl.Field().String())
	return err == nil
}

func validateKeyID(fl validator.FieldLevel) bool {
	return keyIDRe.MatchString(fl.Field().String())
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
