package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ListAccountsResponse wraps an account page.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// ListInvoicesResponse wraps an invoice candidate page.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// ListGroupsResponse wraps the detected auto-reconciliation groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total"`
}

// AccountResponse mirrors a bank account.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	BalanceDate    string          `json:"balance_date"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           string(a.Type),
		Currency:       string(a.Currency),
		InitialBalance: a.InitialBalance,
		BalanceDate:    a.BalanceDate.Format("2006-01-02"),
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func AccountsFromDomain(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountFromDomain(a)
	}
	return out
}

// TransactionResponse is one statement row. RunningBalance is null for
// rows that predate the account's initial balance date.
type TransactionResponse struct {
	ID                string           `json:"id"`
	Date              time.Time        `json:"date"`
	Description       string           `json:"description"`
	Amount            decimal.Decimal  `json:"amount"`
	Direction         string           `json:"direction"`
	Reference         string           `json:"reference,omitempty"`
	Source            string           `json:"source"`
	SourceID          string           `json:"source_id"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate,omitempty"`
	OriginalAmount    *decimal.Decimal `json:"original_amount,omitempty"`
	OriginalCurrency  string           `json:"original_currency,omitempty"`
	RunningBalance    *decimal.Decimal `json:"running_balance"`
	BeforeInitialDate bool             `json:"before_initial_date"`
	IsInitialBalance  bool             `json:"is_initial_balance"`
}

func TransactionFromDomain(t *domain.DisplayTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		Date:              t.Date,
		Description:       t.Description,
		Amount:            t.Amount,
		Direction:         string(t.Direction),
		Reference:         t.Reference,
		Source:            string(t.Source),
		SourceID:          t.SourceID,
		ExchangeRate:      t.ExchangeRate,
		OriginalAmount:    t.OriginalAmount,
		OriginalCurrency:  string(t.OriginalCurrency),
		RunningBalance:    t.RunningBalance,
		BeforeInitialDate: t.BeforeInitialDate,
		IsInitialBalance:  t.IsInitialBalance,
	}
}

// StatementResponse is the full ordered statement for an account.
type StatementResponse struct {
	Account      AccountResponse       `json:"account"`
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

func StatementFromDomain(account *domain.Account, rows []domain.DisplayTransaction) StatementResponse {
	txs := make([]TransactionResponse, len(rows))
	for i := range rows {
		txs[i] = TransactionFromDomain(&rows[i])
	}
	return StatementResponse{
		Account:      AccountFromDomain(account),
		Transactions: txs,
		Total:        len(txs),
	}
}

// SyncResultResponse reports the outcome of a balance verification.
type SyncResultResponse struct {
	AccountID        string          `json:"account_id"`
	NeedsUpdate      bool            `json:"needs_update"`
	CorrectedBalance decimal.Decimal `json:"corrected_balance"`
	Difference       decimal.Decimal `json:"difference"`
}

func SyncResultFromDomain(accountID string, r domain.SyncResult) SyncResultResponse {
	return SyncResultResponse{
		AccountID:        accountID,
		NeedsUpdate:      r.NeedsUpdate,
		CorrectedBalance: r.CorrectedBalance,
		Difference:       r.Difference,
	}
}

// InvoiceResponse is one matchable invoice.
type InvoiceResponse struct {
	ID           string           `json:"id"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	InvoiceType  string           `json:"invoice_type"`
	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate,omitempty"`
	PaidAmount   decimal.Decimal  `json:"paid_amount"`
}

func InvoiceFromDomain(inv *domain.InvoiceCandidate) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID,
		TotalAmount:  inv.TotalAmount,
		InvoiceType:  string(inv.InvoiceType),
		Currency:     string(inv.Currency),
		ExchangeRate: inv.ExchangeRate,
		PaidAmount:   inv.PaidAmount,
	}
}

func InvoicesFromDomain(invs []domain.InvoiceCandidate) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invs))
	for i := range invs {
		out[i] = InvoiceFromDomain(&invs[i])
	}
	return out
}

// SelectionResponse summarizes a session basket against its expense.
type SelectionResponse struct {
	TotalSelectedAmount decimal.Decimal `json:"total_selected_amount"`
	RemainingAmount     decimal.Decimal `json:"remaining_amount"`
	Converted           bool            `json:"converted"`
	PerfectMatch        bool            `json:"perfect_match"`
	AdjustmentType      string          `json:"adjustment_type,omitempty"`
}

func SelectionFromDomain(s domain.Selection) SelectionResponse {
	resp := SelectionResponse{
		TotalSelectedAmount: s.TotalSelectedAmount,
		RemainingAmount:     s.RemainingAmount,
		Converted:           s.Converted,
		PerfectMatch:        s.PerfectMatch(),
	}
	if adj, needed := s.RequiredAdjustment(); needed {
		resp.AdjustmentType = string(adj)
	}
	return resp
}

// SessionResponse is the current state of a matching session.
type SessionResponse struct {
	ID        string            `json:"id"`
	ExpenseID string            `json:"expense_id"`
	Selected  []InvoiceResponse `json:"selected"`
	Summary   SelectionResponse `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SessionFromDomain renders a session. Summary errors (an invoice with
// a bad exchange rate slipped into the basket) surface before this runs,
// so a failed summary is rendered as the zero selection.
func SessionFromDomain(s *domain.ReconciliationSession) SessionResponse {
	summary, _ := s.Summary()
	return SessionResponse{
		ID:        s.ID,
		ExpenseID: s.Expense.ID,
		Selected:  InvoicesFromDomain(s.Selected),
		Summary:   SelectionFromDomain(summary),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ClosedReconciliationResponse reports what a close wrote.
type ClosedReconciliationResponse struct {
	ExpenseID  string              `json:"expense_id"`
	Summary    SelectionResponse   `json:"summary"`
	Adjustment *AdjustmentResponse `json:"adjustment,omitempty"`
}

type AdjustmentResponse struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	ChartAccountID string          `json:"chart_account_id"`
	Notes          string          `json:"notes,omitempty"`
}

func ClosedFromDomain(c *usecase.ClosedReconciliation) ClosedReconciliationResponse {
	resp := ClosedReconciliationResponse{
		ExpenseID: c.ExpenseID,
		Summary:   SelectionFromDomain(c.Selection),
	}
	if c.Adjustment != nil {
		resp.Adjustment = &AdjustmentResponse{
			ID:             c.Adjustment.ID,
			Amount:         c.Adjustment.Amount,
			Type:           string(c.Adjustment.Type),
			ChartAccountID: c.Adjustment.ChartAccountID,
			Notes:          c.Adjustment.Notes,
		}
	}
	return resp
}

// GroupResponse is one detected auto-reconcilable sale group.
type GroupResponse struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	PaymentMethod     string          `json:"payment_method"`
	Channel           string          `json:"channel"`
	SaleCount         int             `json:"sale_count"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	DiscrepancyAmount decimal.Decimal `json:"discrepancy_amount"`
	ValidationErrors  []string        `json:"validation_errors,omitempty"`
	Processable       bool            `json:"processable"`
}

func GroupFromDomain(g *domain.AutoReconciliationGroup) GroupResponse {
	return GroupResponse{
		ID:                g.ID,
		Date:              g.Date.Format("2006-01-02"),
		PaymentMethod:     g.PaymentMethod,
		Channel:           g.Channel,
		SaleCount:         len(g.Sales),
		TotalAmount:       g.TotalAmount,
		Status:            string(g.Status),
		DiscrepancyAmount: g.DiscrepancyAmount,
		ValidationErrors:  g.ValidationErrors,
		Processable:       g.Processable(),
	}
}

func GroupsFromDomain(groups []domain.AutoReconciliationGroup) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = GroupFromDomain(&groups[i])
	}
	return out
}

// ProcessedGroupResponse reports a successful group consolidation.
type ProcessedGroupResponse struct {
	GroupID   string          `json:"group_id"`
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// AuditLogResponse is one audit trail entry.
type AuditLogResponse struct {
	ID           string      `json:"id"`
	Action       string      `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	BeforeState  domain.JSON `json:"before_state,omitempty"`
	AfterState   domain.JSON `json:"after_state,omitempty"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

func AuditLogFromDomain(log *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:           log.ID,
		Action:       string(log.Action),
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		BeforeState:  log.BeforeState,
		AfterState:   log.AfterState,
		Status:       string(log.Status),
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    log.CreatedAt,
	}
}

func AuditLogsFromDomain(logs []*domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		out[i] = AuditLogFromDomain(log)
	}
	return out
}

// ListAuditLogsResponse wraps an audit trail page.
type ListAuditLogsResponse struct {
	Entries []AuditLogResponse `json:"entries"`
	Total   int                `json:"total"`
}
