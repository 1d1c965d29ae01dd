package domain

import (
	"encoding/json"
	"time"
)

// AuditLog records a reconciliation-side effect for compliance review.
type AuditLog struct {
	ID           string
	Action       AuditAction
	ResourceType string // account, expense, autorecon_group
	ResourceID   string
	BeforeState  JSON
	AfterState   JSON
	Status       AuditStatus
	ErrorMessage string
	CreatedAt    time.Time
}

// JSON is a type alias for JSON payloads in audit entries.
type JSON map[string]any

// AuditAction identifies an auditable reconciliation action.
type AuditAction string

const (
	AuditActionBalanceCorrect    AuditAction = "balance.correct"
	AuditActionExpenseReconcile  AuditAction = "expense.reconcile"
	AuditActionAutoReconProcess  AuditAction = "autorecon.process"
	AuditActionAutoReconRollback AuditAction = "autorecon.rollback"
)

// AuditStatus is the outcome of an audited action.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
)

// MarshalState converts a domain object to JSON for audit logging.
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// AuditFilter selects audit entries when listing.
type AuditFilter struct {
	Action       string
	ResourceType string
	ResourceID   string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}
