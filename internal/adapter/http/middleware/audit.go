package middleware

import (
	"encoding/json"
	"net/http"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditLog records successful build and scan requests. Key, signing,
// submission and session events are audited by the services themselves.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath())
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"route":      c.FullPath(),
			"status":     status,
			"request_id": c.GetString(response.CtxRequestID),
		})

		entry := domain.NewAuditLog(action, resourceType, "", "")
		entry.IPAddress = c.ClientIP()
		entry.Details = string(details)
		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/transactions/payment", "/api/v1/transactions/trustline", "/api/v1/swaps":
		return domain.AuditActionTxBuilt, "transaction"
	case "/api/v1/security/asset":
		return domain.AuditActionSecurityScan, "asset"
	case "/api/v1/security/site":
		return domain.AuditActionSecurityScan, "site"
	case "/api/v1/security/transaction":
		return domain.AuditActionSecurityScan, "transaction"
	}
	return "", ""
}
