package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionKeyStored        AuditAction = "KEY_STORED"
	AuditActionKeyRemoved       AuditAction = "KEY_REMOVED"
	AuditActionKeyUnlockFailed  AuditAction = "KEY_UNLOCK_FAILED"
	AuditActionTxSigned         AuditAction = "TX_SIGNED"
	AuditActionTxSubmitted      AuditAction = "TX_SUBMITTED"
	AuditActionTxRejected       AuditAction = "TX_REJECTED"
	AuditActionSecurityOverride AuditAction = "SECURITY_OVERRIDE"
	AuditActionSessionOpened    AuditAction = "SESSION_OPENED"
	AuditActionTxBuilt          AuditAction = "TX_BUILT"
	AuditActionSecurityScan     AuditAction = "SECURITY_SCAN"
)

// AuditLog records a single audited wallet action. It never carries key material.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Address      string      `json:"address,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewAuditLog stamps a fresh entry.
func NewAuditLog(action AuditAction, resourceType, resourceID, address string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		Address:      address,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	}
}
