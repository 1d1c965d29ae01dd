package dto

// StartSessionRequest opens a matching session for an expense.
type StartSessionRequest struct {
	ExpenseID string `json:"expense_id"`
}

// AddInvoiceRequest puts an invoice into a session basket.
type AddInvoiceRequest struct {
	InvoiceID string `json:"invoice_id"`
}

// CloseSessionRequest finalizes a session. ChartAccountID and Notes are
// required only when the selection leaves a residual.
type CloseSessionRequest struct {
	ChartAccountID string `json:"chart_account_id"`
	Notes          string `json:"notes"`
}

// ProcessGroupRequest converts a detected auto-reconciliation group
// into a consolidated payment.
type ProcessGroupRequest struct {
	GroupID string `json:"group_id"`
}
