package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	CompanyIDKey    contextKey = "companyID"
	CompanyIDHeader string     = "X-Company-ID"
)

// CompanyScope requires an X-Company-ID header and stores its value in the
// request context. Every tenant-scoped route sits behind it.
func CompanyScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := r.Header.Get(CompanyIDHeader)
		if companyID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"error":   ErrorCodeMissingCompany,
				"message": ErrorMessageMissingCompany,
			})
			return
		}

		ctx := context.WithValue(r.Context(), CompanyIDKey, companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCompanyID returns the company id set by CompanyScope, or "".
func GetCompanyID(ctx context.Context) string {
	if companyID, ok := ctx.Value(CompanyIDKey).(string); ok {
		return companyID
	}
	return ""
}
