package http

import (
	"context"
	"net/http"

	"github.com/Cloudtechsre/SaaS-platform/internal/domain"
)

const tenantHeader = "X-Tenant-Id"

type tenantKey struct{}

// TenantContext requires the X-Tenant-Id header and stores its value,
// unchanged, in the request context for downstream handlers. A missing or
// empty header stops the chain with a 400.
func TenantContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(tenantHeader)
		if tenantID == "" {
			writeError(w, http.StatusBadRequest, domain.ErrMissingTenant.Error())
			return
		}
		ctx := context.WithValue(r.Context(), tenantKey{}, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext returns the tenant id stored by TenantContext.
func TenantFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantKey{}).(string)
	return tenantID, ok
}
