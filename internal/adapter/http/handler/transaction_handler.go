package handler

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/internal/service"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler builds, signs and submits envelopes.
type TransactionHandler struct {
	builder    ports.TransactionBuilder
	paths      ports.PathFinder
	signer     ports.SigningService
	submitter  ports.Submitter
	flow       ports.WalletFlow
	passphrase string
	defaults   dto.Defaults
}

// NewTransactionHandler creates a TransactionHandler. passphrase is the
// network the server is configured for; envelopes from other networks fail
// to decode.
func NewTransactionHandler(
	builder ports.TransactionBuilder,
	paths ports.PathFinder,
	signer ports.SigningService,
	submitter ports.Submitter,
	flow ports.WalletFlow,
	passphrase string,
	defaults dto.Defaults,
) *TransactionHandler {
	return &TransactionHandler{
		builder:    builder,
		paths:      paths,
		signer:     signer,
		submitter:  submitter,
		flow:       flow,
		passphrase: passphrase,
		defaults:   defaults,
	}
}

// BuildPayment handles POST /api/v1/transactions/payment.
func (h *TransactionHandler) BuildPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	intent, err := req.ToIntent(h.defaults)
	if err != nil {
		response.Error(c, err)
		return
	}

	env, err := h.builder.Build(c.Request.Context(), intent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, env)
}

// BuildTrustline handles POST /api/v1/transactions/trustline.
func (h *TransactionHandler) BuildTrustline(c *gin.Context) {
	var req dto.TrustlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	intent, err := req.ToIntent(h.defaults)
	if err != nil {
		response.Error(c, err)
		return
	}

	env, err := h.builder.BuildChangeTrust(c.Request.Context(), intent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, env)
}

// Quote handles POST /api/v1/swaps/quote.
func (h *TransactionHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	path, err := h.findPath(c, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, path)
}

// BuildSwap handles POST /api/v1/swaps.
func (h *TransactionHandler) BuildSwap(c *gin.Context) {
	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	path, err := h.findPath(c, req.QuoteRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	intent, err := req.ToIntent(path, h.defaults)
	if err != nil {
		response.Error(c, err)
		return
	}

	env, err := h.builder.BuildSwap(c.Request.Context(), intent)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, env)
}

func (h *TransactionHandler) findPath(c *gin.Context, req dto.QuoteRequest) (*domain.SwapPath, error) {
	q, err := req.Parse(h.defaults)
	if err != nil {
		return nil, err
	}
	path, err := h.paths.FindPath(c.Request.Context(), q.Source, q.Dest, q.Amount, q.Slippage)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apperror.ErrNoPath()
	}
	return path, nil
}

// Sign handles POST /api/v1/transactions/sign.
func (h *TransactionHandler) Sign(c *gin.Context) {
	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	decoded, err := service.DecodeEnvelope(req.XDR, h.passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}
	unsigned := &domain.UnsignedEnvelope{EnvelopeInfo: decoded.EnvelopeInfo, XDR: decoded.XDR}

	signed, err := h.signer.UnlockAndSign(c.Request.Context(), req.KeyID, req.Passphrase, unsigned)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, signed)
}

// Submit handles POST /api/v1/transactions/submit.
func (h *TransactionHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	env, err := service.DecodeEnvelope(req.XDR, h.passphrase)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.submitter.Submit(c.Request.Context(), env)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Send handles POST /api/v1/payments/send.
func (h *TransactionHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	intent, err := req.PaymentRequest.ToIntent(h.defaults)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.flow.Send(c.Request.Context(), ports.SendRequest{
		Intent:           intent,
		KeyID:            req.KeyID,
		Credential:       req.Passphrase,
		SiteURL:          req.SiteURL,
		OverrideWarnings: req.OverrideWarnings,
		ClientIP:         c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
