package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/dto"
	"github.com/juliosil99/demayoreoerp/internal/domain"
)

type autoReconServiceStub struct {
	detectFn  func(ctx context.Context) ([]domain.AutoReconciliationGroup, error)
	processFn func(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error)
}

func (s *autoReconServiceStub) DetectGroups(ctx context.Context) ([]domain.AutoReconciliationGroup, error) {
	return s.detectFn(ctx)
}

func (s *autoReconServiceStub) ProcessGroup(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error) {
	return s.processFn(ctx, groupID)
}

func TestAutoReconHandler_ListGroups(t *testing.T) {
	handler := NewAutoReconHandler(&autoReconServiceStub{
		detectFn: func(ctx context.Context) ([]domain.AutoReconciliationGroup, error) {
			return []domain.AutoReconciliationGroup{
				{
					ID:            "2026-03-05__card__Amazon",
					Date:          time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
					PaymentMethod: "card",
					Channel:       "Amazon",
					Sales:         []domain.Sale{{ID: "s1"}, {ID: "s2"}},
					TotalAmount:   decimal.NewFromInt(300),
					Status:        domain.GroupStatusPerfect,
				},
				{
					ID:               "2026-03-04__card__Amazon",
					Status:           domain.GroupStatusMajor,
					ValidationErrors: []string{"comisión distinta de cero"},
				},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.ListGroups(rec, httptest.NewRequest(http.MethodGet, "/autorecon/groups", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListGroupsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 groups, got %d", resp.Total)
	}
	if resp.Groups[0].Date != "2026-03-05" || resp.Groups[0].SaleCount != 2 || !resp.Groups[0].Processable {
		t.Fatalf("unexpected first group: %+v", resp.Groups[0])
	}
	if resp.Groups[1].Processable {
		t.Fatal("major-discrepancy group must not be processable")
	}
}

func TestAutoReconHandler_ListGroups_ServiceError(t *testing.T) {
	handler := NewAutoReconHandler(&autoReconServiceStub{
		detectFn: func(ctx context.Context) ([]domain.AutoReconciliationGroup, error) {
			return nil, errors.New("db error")
		},
	})

	rec := httptest.NewRecorder()
	handler.ListGroups(rec, httptest.NewRequest(http.MethodGet, "/autorecon/groups", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAutoReconHandler_ProcessGroup(t *testing.T) {
	handler := NewAutoReconHandler(&autoReconServiceStub{
		processFn: func(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error) {
			if groupID != "2026-03-05__card__Amazon" {
				t.Fatalf("unexpected group ID %s", groupID)
			}
			return &domain.ConsolidatedPayment{
				ID:     "pay-1",
				Amount: decimal.NewFromInt(300),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.ProcessGroupRequest{GroupID: "2026-03-05__card__Amazon"})
	req := httptest.NewRequest(http.MethodPost, "/autorecon/groups/process", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ProcessGroup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ProcessedGroupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.PaymentID != "pay-1" || !resp.Amount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAutoReconHandler_ProcessGroup_MissingID(t *testing.T) {
	handler := NewAutoReconHandler(&autoReconServiceStub{
		processFn: func(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error) {
			t.Fatal("ProcessGroup should not be called without a group ID")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/autorecon/groups/process", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.ProcessGroup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAutoReconHandler_ProcessGroup_NotProcessable(t *testing.T) {
	handler := NewAutoReconHandler(&autoReconServiceStub{
		processFn: func(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error) {
			return nil, domain.ErrGroupNotProcessable
		},
	})

	body, _ := json.Marshal(dto.ProcessGroupRequest{GroupID: "2026-03-04__card__Amazon"})
	req := httptest.NewRequest(http.MethodPost, "/autorecon/groups/process", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ProcessGroup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
