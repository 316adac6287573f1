package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"
)

type contextKey string

const (
	StaffNameKey contextKey = "staff_name"
	RequestIDKey contextKey = "request_id"

	StaffHeader     = "X-Staff-Name"
	RequestIDHeader = "X-Request-ID"

	maxStaffNameLength = 100
)

// StaffMiddleware puts the acting staff member into the request context. Authentication
// is handled in front of this service; the header only names who performed a change.
type StaffMiddleware struct{}

func NewStaffMiddleware() *StaffMiddleware {
	return &StaffMiddleware{}
}

func (m *StaffMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(StaffHeader))
		if name != "" && utf8.RuneCountInString(name) <= maxStaffNameLength {
			r = r.WithContext(WithStaffName(r.Context(), name))
		}
		next.ServeHTTP(w, r)
	})
}

func WithStaffName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, StaffNameKey, name)
}

// GetStaffNameFromContext extracts the staff name from context
func GetStaffNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(StaffNameKey).(string)
	return name, ok && name != ""
}

// GetRequestIDFromContext extracts the request id set by the logging middleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
