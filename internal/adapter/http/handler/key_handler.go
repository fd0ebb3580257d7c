package handler

import (
	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// KeyHandler manages keys in the secure key store. Responses never carry
// secret material.
type KeyHandler struct {
	keys ports.KeyStore
}

func NewKeyHandler(keys ports.KeyStore) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// Store handles POST /api/v1/keys.
func (h *KeyHandler) Store(c *gin.Context) {
	var req dto.StoreKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	key, err := domain.KeyMaterialFromSecret(req.SecretSeed)
	if err != nil {
		response.Error(c, apperror.Validation("secret_seed is not a valid Stellar secret seed"))
		return
	}
	defer key.Wipe()

	address, err := key.Address()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	if err := h.keys.Store(c.Request.Context(), req.KeyID, key, req.Passphrase); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.KeyResponse{KeyID: req.KeyID, Address: address, Exists: true})
}

// Remove handles DELETE /api/v1/keys/:id.
func (h *KeyHandler) Remove(c *gin.Context) {
	var uri dto.KeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.keys.Remove(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Exists handles GET /api/v1/keys/:id.
func (h *KeyHandler) Exists(c *gin.Context) {
	var uri dto.KeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ok, err := h.keys.Exists(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.KeyResponse{KeyID: uri.ID, Exists: ok})
}
