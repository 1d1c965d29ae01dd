package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
}

// ExpenseRepository defines data access for expense rows.
type ExpenseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ExpenseRecord, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.ExpenseRecord, error)
	MarkReconciled(ctx context.Context, tx Transaction, id string, at time.Time) error
}

// PaymentRepository defines data access for client payments and the
// consolidated payments written by auto-reconciliation.
type PaymentRepository interface {
	ListByAccount(ctx context.Context, accountID string) ([]domain.PaymentRecord, error)
	CreateConsolidated(ctx context.Context, payment *domain.ConsolidatedPayment) error
	DeleteConsolidated(ctx context.Context, id string) error
}

// TransferRepository defines data access for inter-account transfers.
type TransferRepository interface {
	ListOutgoing(ctx context.Context, accountID string) ([]domain.TransferRecord, error)
	ListIncoming(ctx context.Context, accountID string) ([]domain.TransferRecord, error)
}

// InvoiceRepository defines data access for invoice candidates.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.InvoiceCandidate, error)
	ListCandidates(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error)
	ApplyPayment(ctx context.Context, tx Transaction, id string, paidAmount decimal.Decimal, processed bool, at time.Time) error
}

// SaleRepository defines data access for sales.
type SaleRepository interface {
	ListUnreconciled(ctx context.Context) ([]domain.Sale, error)
	BulkAssignReconciliation(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error
}

// ChannelRepository defines data access for sales channels.
type ChannelRepository interface {
	List(ctx context.Context) ([]domain.Channel, error)
}

// ReconciliationRepository defines data access for the write side of an
// expense/invoice reconciliation.
type ReconciliationRepository interface {
	CreateRelation(ctx context.Context, tx Transaction, rel *domain.ExpenseInvoiceRelation) error
	CreateAdjustment(ctx context.Context, tx Transaction, adj *domain.AccountingAdjustment) error
}

// AuditRepository defines data access for audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time. Injected so time-dependent decisions
// stay testable.
type Clock interface {
	Now() time.Time
}

// Cache defines byte-value caching operations; reconciliation sessions
// are stored through it as JSON.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
