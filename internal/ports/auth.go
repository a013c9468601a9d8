package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
)

// SessionCodec issues and verifies self-contained session claims. The
// claim is the whole session: there is no server-side registry, so
// issuing never writes and verifying never reads anything but the token.
type SessionCodec interface {
	// Issue signs a token embedding the session claim.
	Issue(sess domainauth.Session) (string, error)

	// Verify checks the token signature and shape and returns the
	// embedded session. Expiry is left to the caller so decisions and
	// redirects use one clock.
	Verify(token string) (domainauth.Session, error)
}

// RoleResolver looks up an admin's current role from the record store,
// for deployments that do not trust the cached role token.
type RoleResolver interface {
	ResolveRole(ctx context.Context, username string) (domainauth.Role, error)
}
