package handler

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

type SecurityHandler struct {
	security ports.SecurityService
}

func NewSecurityHandler(security ports.SecurityService) *SecurityHandler {
	return &SecurityHandler{security: security}
}

// ScanAsset handles POST /api/v1/security/asset.
func (h *SecurityHandler) ScanAsset(c *gin.Context) {
	var req dto.AssetScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	asset, err := domain.ParseAsset(req.Asset)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAsset(err.Error()))
		return
	}

	verdict, err := h.security.AssessAsset(c.Request.Context(), asset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, verdict)
}

// ScanAssets handles POST /api/v1/security/assets.
func (h *SecurityHandler) ScanAssets(c *gin.Context) {
	var req dto.AssetsScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	assets, err := req.ToAssets()
	if err != nil {
		response.Error(c, apperror.ErrInvalidAsset(err.Error()))
		return
	}

	verdicts, err := h.security.AssessAssets(c.Request.Context(), assets)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, verdicts)
}

// ScanSite handles POST /api/v1/security/site.
func (h *SecurityHandler) ScanSite(c *gin.Context) {
	var req dto.SiteScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	verdict, err := h.security.AssessSite(c.Request.Context(), req.URL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, verdict)
}

// ScanTransaction handles POST /api/v1/security/transaction.
func (h *SecurityHandler) ScanTransaction(c *gin.Context) {
	var req dto.TransactionScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	assessment, err := h.security.AssessTransaction(c.Request.Context(), ports.TransactionCheck{
		EnvelopeXDR: req.XDR,
		SiteURL:     req.SiteURL,
		Destination: req.Destination,
		Memo:        req.Memo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, assessment)
}
