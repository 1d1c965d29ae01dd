package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrExpenseNotFound, http.StatusNotFound},
		{domain.ErrInvoiceNotFound, http.StatusNotFound},
		{domain.ErrSessionNotFound, http.StatusNotFound},
		{domain.ErrGroupNotFound, http.StatusNotFound},
		{domain.ErrInvoiceAlreadyApplied, http.StatusConflict},
		{domain.ErrInvoiceNotSelected, http.StatusConflict},
		{domain.ErrExpenseReconciled, http.StatusConflict},
		{domain.ErrGroupNotProcessable, http.StatusConflict},
		{domain.ErrInvalidExchangeRate, http.StatusBadRequest},
		{domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{domain.ErrMissingChartAccount, http.StatusBadRequest},
		{domain.ErrInvalidCurrency, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrAmountTooLarge, http.StatusBadRequest},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	err := fmt.Errorf("session svc: %w", domain.ErrSessionNotFound)
	if got := mapDomainError(err); got != http.StatusNotFound {
		t.Errorf("expected 404 for wrapped error, got %d", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"limit=25", 25},
		{"limit=", 50},
		{"limit=abc", 50},
		{"", 50},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/accounts?"+tt.query, nil)
		if got := parseIntQuery(req, "limit", 50); got != tt.want {
			t.Errorf("parseIntQuery(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
