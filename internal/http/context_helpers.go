package httpx

import (
	"context"

	"github.com/shanuka19697/LMS-sub001/internal/access"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
)

// carrierKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type carrierKey struct{}

// SetCarrierInContext returns a child context carrying the decoded sessions.
func SetCarrierInContext(ctx context.Context, c access.Carrier) context.Context {
	return context.WithValue(ctx, carrierKey{}, c)
}

// GetCarrierFromContext returns the session carrier for the request.
// A zero carrier means the middleware did not run or no cookies decoded.
func GetCarrierFromContext(ctx context.Context) access.Carrier {
	if c, ok := ctx.Value(carrierKey{}).(access.Carrier); ok {
		return c
	}
	return access.Carrier{}
}

// GetStudentSessionFromContext returns the student session, if present.
func GetStudentSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	c := GetCarrierFromContext(ctx)
	return c.Student, c.Student != nil
}

// GetAdminSessionFromContext returns the admin session, if present.
func GetAdminSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	c := GetCarrierFromContext(ctx)
	return c.Admin, c.Admin != nil
}
