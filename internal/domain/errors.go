package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Currency errors
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
	ErrCurrencyMismatch    = errors.New("currencies do not match")

	// Reconciliation errors
	ErrSessionNotFound       = errors.New("reconciliation session not found")
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceNotSelected    = errors.New("invoice is not part of the selection")
	ErrInvoiceAlreadyApplied = errors.New("invoice is already fully applied")
	ErrExpenseReconciled     = errors.New("expense is already reconciled")
	ErrMissingChartAccount   = errors.New("adjustment requires a chart account")

	// Auto-reconciliation errors
	ErrGroupNotFound       = errors.New("auto-reconciliation group not found")
	ErrGroupNotProcessable = errors.New("group has a major discrepancy and cannot be processed automatically")

	// Generic validation errors
	ErrInvalidAmount = errors.New("amount must be positive")
)
