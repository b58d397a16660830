package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Cloudtechsre/SaaS-platform/internal/app"
	"github.com/Cloudtechsre/SaaS-platform/internal/domain"
	"github.com/Cloudtechsre/SaaS-platform/internal/metrics"
)

// OrderIngester is the minimal interface needed to ingest an order.
type OrderIngester interface {
	IngestOrder(ctx context.Context, in app.IngestInput) (domain.Order, error)
}

// HandleIngest returns the POST /ingest handler: tenant from context,
// payload validation, one persistence call, domain counter after a
// successful write. Persistence failures are logged with full detail and
// answered with a generic 500.
func HandleIngest(svc OrderIngester, m *metrics.Metrics, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		tenantID, ok := TenantFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusBadRequest, domain.ErrMissingTenant.Error())
			return
		}

		var req ingestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		amount, status, err := req.validate()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		order, err := svc.IngestOrder(r.Context(), app.IngestInput{
			TenantID: tenantID,
			Amount:   amount,
			Status:   status,
		})
		if err != nil {
			logger.Printf("ingest order: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		m.IncOrderCreated(order.TenantID)
		writeJSON(w, http.StatusCreated, ingestResponse{
			ID:        order.ID,
			TenantID:  order.TenantID,
			Amount:    order.Amount,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		})
	}
}

type ingestRequest struct {
	Amount any `json:"amount"`
	Status any `json:"status"`
}

// validate enforces the two payload checks: amount must arrive as a JSON
// number and status as a non-empty string. Nothing is coerced; "10" is not
// an amount and "" is not a status.
func (r ingestRequest) validate() (float64, string, error) {
	amount, ok := r.Amount.(float64)
	if !ok {
		return 0, "", domain.ErrInvalidPayload
	}
	status, ok := r.Status.(string)
	if !ok || status == "" {
		return 0, "", domain.ErrInvalidPayload
	}
	return amount, status, nil
}

type ingestResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
