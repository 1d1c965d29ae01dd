package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetByIDFunc       func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc          func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	UpdateBalanceFunc func(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed stores an account for default lookups.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrAccountNotFound
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	GetByIDFunc        func(ctx context.Context, id string) (*domain.ExpenseRecord, error)
	ListByAccountFunc  func(ctx context.Context, accountID string) ([]domain.ExpenseRecord, error)
	MarkReconciledFunc func(ctx context.Context, tx usecase.Transaction, id string, at time.Time) error
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{}
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.ExpenseRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.ExpenseRecord, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockExpenseRepository) MarkReconciled(ctx context.Context, tx usecase.Transaction, id string, at time.Time) error {
	if m.MarkReconciledFunc != nil {
		return m.MarkReconciledFunc(ctx, tx, id, at)
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	ListByAccountFunc      func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error)
	CreateConsolidatedFunc func(ctx context.Context, payment *domain.ConsolidatedPayment) error
	DeleteConsolidatedFunc func(ctx context.Context, id string) error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) CreateConsolidated(ctx context.Context, payment *domain.ConsolidatedPayment) error {
	if m.CreateConsolidatedFunc != nil {
		return m.CreateConsolidatedFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) DeleteConsolidated(ctx context.Context, id string) error {
	if m.DeleteConsolidatedFunc != nil {
		return m.DeleteConsolidatedFunc(ctx, id)
	}
	return nil
}

// MockTransferRepository is a mock implementation of TransferRepository.
type MockTransferRepository struct {
	ListOutgoingFunc func(ctx context.Context, accountID string) ([]domain.TransferRecord, error)
	ListIncomingFunc func(ctx context.Context, accountID string) ([]domain.TransferRecord, error)
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{}
}

func (m *MockTransferRepository) ListOutgoing(ctx context.Context, accountID string) ([]domain.TransferRecord, error) {
	if m.ListOutgoingFunc != nil {
		return m.ListOutgoingFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockTransferRepository) ListIncoming(ctx context.Context, accountID string) ([]domain.TransferRecord, error) {
	if m.ListIncomingFunc != nil {
		return m.ListIncomingFunc(ctx, accountID)
	}
	return nil, nil
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.InvoiceCandidate

	GetByIDFunc        func(ctx context.Context, id string) (*domain.InvoiceCandidate, error)
	ListCandidatesFunc func(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error)
	ApplyPaymentFunc   func(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, processed bool, at time.Time) error
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.InvoiceCandidate),
	}
}

// Seed stores an invoice for default lookups.
func (m *MockInvoiceRepository) Seed(invoice *domain.InvoiceCandidate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ID] = invoice
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.InvoiceCandidate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) ListCandidates(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error) {
	if m.ListCandidatesFunc != nil {
		return m.ListCandidatesFunc(ctx, currency, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.InvoiceCandidate
	for _, inv := range m.invoices {
		if inv.Currency == currency {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *MockInvoiceRepository) ApplyPayment(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, processed bool, at time.Time) error {
	if m.ApplyPaymentFunc != nil {
		return m.ApplyPaymentFunc(ctx, tx, id, paidAmount, processed, at)
	}
	return nil
}

// MockSaleRepository is a mock implementation of SaleRepository.
type MockSaleRepository struct {
	ListUnreconciledFunc         func(ctx context.Context) ([]domain.Sale, error)
	BulkAssignReconciliationFunc func(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error
}

func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{}
}

func (m *MockSaleRepository) ListUnreconciled(ctx context.Context) ([]domain.Sale, error) {
	if m.ListUnreconciledFunc != nil {
		return m.ListUnreconciledFunc(ctx)
	}
	return nil, nil
}

func (m *MockSaleRepository) BulkAssignReconciliation(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error {
	if m.BulkAssignReconciliationFunc != nil {
		return m.BulkAssignReconciliationFunc(ctx, saleIDs, reconciliationID, datePaid)
	}
	return nil
}

// MockChannelRepository is a mock implementation of ChannelRepository.
type MockChannelRepository struct {
	ListFunc func(ctx context.Context) ([]domain.Channel, error)
}

func NewMockChannelRepository() *MockChannelRepository {
	return &MockChannelRepository{}
}

func (m *MockChannelRepository) List(ctx context.Context) ([]domain.Channel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// MockReconciliationRepository is a mock implementation of ReconciliationRepository.
type MockReconciliationRepository struct {
	CreateRelationFunc   func(ctx context.Context, tx usecase.Transaction, rel *domain.ExpenseInvoiceRelation) error
	CreateAdjustmentFunc func(ctx context.Context, tx usecase.Transaction, adj *domain.AccountingAdjustment) error
}

func NewMockReconciliationRepository() *MockReconciliationRepository {
	return &MockReconciliationRepository{}
}

func (m *MockReconciliationRepository) CreateRelation(ctx context.Context, tx usecase.Transaction, rel *domain.ExpenseInvoiceRelation) error {
	if m.CreateRelationFunc != nil {
		return m.CreateRelationFunc(ctx, tx, rel)
	}
	return nil
}

func (m *MockReconciliationRepository) CreateAdjustment(ctx context.Context, tx usecase.Transaction, adj *domain.AccountingAdjustment) error {
	if m.CreateAdjustmentFunc != nil {
		return m.CreateAdjustmentFunc(ctx, tx, adj)
	}
	return nil
}

// MockAuditRepository records audit entries in memory.
type MockAuditRepository struct {
	mu      sync.Mutex
	Entries []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
	ListFunc   func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Entries, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	m.RolledBack = true
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator returns sequential IDs.
type MockIDGenerator struct {
	mu     sync.Mutex
	nextID int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return fmt.Sprintf("id-%03d", m.nextID)
}

// MockClock returns a fixed time.
type MockClock struct {
	Time time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{Time: t}
}

func (m *MockClock) Now() time.Time {
	return m.Time
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		items: make(map[string][]byte),
	}
}

// Get mirrors the Redis client: a miss is an error, not a nil value.
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
