package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Cloudtechsre/SaaS-platform/internal/app"
	"github.com/Cloudtechsre/SaaS-platform/internal/domain"
	"github.com/Cloudtechsre/SaaS-platform/internal/metrics"
)

func TestHandleIngest(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	order := domain.Order{
		ID:        "0d4f8f2e-6a42-4c06-9d6b-0f1d6c1f2a33",
		TenantID:  "tenant-a",
		Amount:    10,
		Status:    "paid",
		CreatedAt: now,
	}

	tests := []struct {
		name           string
		method         string
		tenantID       string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "created",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":10,"status":"paid"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"tenant_id":"tenant-a"`,
		},
		{
			name:           "missing tenant context",
			method:         http.MethodPost,
			body:           `{"amount":10,"status":"paid"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"X-Tenant-Id header is required"}`,
		},
		{
			name:           "string amount",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":"10","status":"paid"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"amount (number) and status (string) are required"}`,
		},
		{
			name:           "missing amount",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"status":"paid"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"amount (number) and status (string) are required"}`,
		},
		{
			name:           "empty status",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":10,"status":""}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"amount (number) and status (string) are required"}`,
		},
		{
			name:           "numeric status",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":10,"status":5}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"amount (number) and status (string) are required"}`,
		},
		{
			name:           "malformed json",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `{"error":"invalid request body"}`,
		},
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			tenantID:       "tenant-a",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "persistence failure",
			method:         http.MethodPost,
			tenantID:       "tenant-a",
			body:           `{"amount":10,"status":"paid"}`,
			serviceErr:     errors.New("create order: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOrderIngester{order: order, err: tt.serviceErr}
			m := metrics.New()

			req := httptest.NewRequest(tt.method, "/ingest", strings.NewReader(tt.body))
			if tt.tenantID != "" {
				req = req.WithContext(context.WithValue(req.Context(), tenantKey{}, tt.tenantID))
			}
			rec := httptest.NewRecorder()

			HandleIngest(svc, m, discardLogger()).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (body %q)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleIngest_NeverLeaksStoreError(t *testing.T) {
	t.Parallel()

	svc := &stubOrderIngester{err: errors.New("pq: relation orders does not exist")}
	m := metrics.New()

	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(`{"amount":10,"status":"paid"}`))
	req = req.WithContext(context.WithValue(req.Context(), tenantKey{}, "tenant-a"))
	rec := httptest.NewRecorder()

	HandleIngest(svc, m, discardLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "relation") {
		t.Fatalf("store error leaked to client: %q", rec.Body.String())
	}
}

func TestHandleIngest_ResponseShape(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	svc := &stubOrderIngester{order: domain.Order{
		ID:        "0d4f8f2e-6a42-4c06-9d6b-0f1d6c1f2a33",
		TenantID:  "tenant-a",
		Amount:    19.99,
		Status:    "paid",
		CreatedAt: now,
	}}
	m := metrics.New()

	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(`{"amount":19.99,"status":"paid"}`))
	req = req.WithContext(context.WithValue(req.Context(), tenantKey{}, "tenant-a"))
	rec := httptest.NewRecorder()

	HandleIngest(svc, m, discardLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var resp struct {
		ID        string    `json:"id"`
		TenantID  string    `json:"tenant_id"`
		Amount    float64   `json:"amount"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != svc.order.ID || resp.TenantID != "tenant-a" || resp.Amount != 19.99 || resp.Status != "paid" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if !resp.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, resp.CreatedAt)
	}
}

type stubOrderIngester struct {
	order  domain.Order
	inputs []app.IngestInput
	err    error
}

func (s *stubOrderIngester) IngestOrder(_ context.Context, in app.IngestInput) (domain.Order, error) {
	if s.err != nil {
		return domain.Order{}, s.err
	}
	s.inputs = append(s.inputs, in)
	return s.order, nil
}
