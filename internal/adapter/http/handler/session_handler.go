package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 5 * time.Second

// SessionHandler handles the passcode-for-token exchange.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Open handles POST /api/v1/session.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.sessions.Open(c.Request.Context(), req.Passcode, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SessionResponse{Token: token, ExpiresAt: expiry.Unix()})
}

// HealthCheck handles GET /health. Dependencies are pinged concurrently.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	type depStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		var mu sync.Mutex
		deps := make(map[string]depStatus, len(checkers))
		allHealthy := true

		var g errgroup.Group
		for _, checker := range checkers {
			g.Go(func() error {
				err := checker.Ping(ctx)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
					allHealthy = false
				} else {
					deps[checker.Name()] = depStatus{Status: "healthy"}
				}
				return nil
			})
		}
		_ = g.Wait()

		status, code := "healthy", http.StatusOK
		if !allHealthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
