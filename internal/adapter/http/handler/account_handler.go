package handler

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves read-only network state.
type AccountHandler struct {
	network ports.NetworkService
	fees    ports.FeeService
}

func NewAccountHandler(network ports.NetworkService, fees ports.FeeService) *AccountHandler {
	return &AccountHandler{network: network, fees: fees}
}

// GetAccount handles GET /api/v1/accounts/:address.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := h.network.LoadAccount(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrAccountNotFound(uri.Address))
		return
	}
	response.OK(c, account)
}

// GetFees handles GET /api/v1/fees. The recommendation always has a value;
// it falls back to the base fee when stats are unavailable.
func (h *AccountHandler) GetFees(c *gin.Context) {
	response.OK(c, h.fees.Recommend(c.Request.Context()))
}
