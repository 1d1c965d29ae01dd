package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubIdempotencyStore struct {
	checkFn  func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	updateFn func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if s.checkFn != nil {
		return s.checkFn(ctx, key, response, ttl)
	}
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, key, response, ttl)
	}
	return nil
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliations/sessions", bytes.NewBufferString(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	return req
}

func TestIdempotencyMiddleware_SkipsReadsAndKeylessRequests(t *testing.T) {
	mw := NewIdempotencyMiddleware(&stubIdempotencyStore{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			t.Fatal("store must not be consulted")
			return false, nil, nil
		},
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil),
		postWithKey(""),
	} {
		called := false
		rr := httptest.NewRecorder()
		mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(rr, req)

		if !called {
			t.Errorf("%s %s: expected next handler to run", req.Method, req.URL.Path)
		}
	}
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	mw := NewIdempotencyMiddleware(&stubIdempotencyStore{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return true, []byte(`{"cached":true}`), nil
		},
	})

	rr := httptest.NewRecorder()
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on a replay")
	})).ServeHTTP(rr, postWithKey("key-1"))

	if rr.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("expected replay header")
	}
	if rr.Body.String() != `{"cached":true}` {
		t.Errorf("unexpected body %s", rr.Body.String())
	}
}

func TestIdempotencyMiddleware_StoresOnlySuccessfulResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStored bool
	}{
		{"created is stored", http.StatusCreated, true},
		{"server error is not stored", http.StatusInternalServerError, false},
		{"conflict is not stored", http.StatusConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored []byte
			mw := NewIdempotencyMiddleware(&stubIdempotencyStore{
				updateFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) error {
					stored = append([]byte(nil), response...)
					return nil
				},
			})

			rr := httptest.NewRecorder()
			mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"ok":true}`))
			})).ServeHTTP(rr, postWithKey("key-2"))

			if tt.wantStored && string(stored) != `{"ok":true}` {
				t.Errorf("expected response stored, got %q", stored)
			}
			if !tt.wantStored && stored != nil {
				t.Errorf("response must not be stored for status %d", tt.status)
			}
		})
	}
}

func TestIdempotencyMiddleware_FailsClosedOnStoreError(t *testing.T) {
	mw := NewIdempotencyMiddleware(&stubIdempotencyStore{
		checkFn: func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
			return false, nil, context.DeadlineExceeded
		},
	})

	rr := httptest.NewRecorder()
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the store fails")
	})).ServeHTTP(rr, postWithKey("key-3"))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}
