package auth

// Package auth contains domain-level types for principals and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an admin's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RolePaperAdmin   Role = "PAPER_ADMIN"
	RoleMessageAdmin Role = "MESSAGE_ADMIN"
)

// Valid reports whether r is a member of the closed role set.
// Students carry no role; an empty or unknown role never grants access.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RolePaperAdmin, RoleMessageAdmin:
		return true
	}
	return false
}

// PrincipalKind distinguishes the two authenticated actor types.
type PrincipalKind string

const (
	KindStudent PrincipalKind = "student"
	KindAdmin   PrincipalKind = "admin"
)

// Session is the self-contained identity claim issued on login and carried
// by the browser. The server holds no record of it; verification is purely
// cryptographic, so logout and expiry are the only ways it stops working.
type Session struct {
	// ID is an opaque session identifier (JTI in the signed claim).
	ID string `json:"id"`
	// Subject is the student index number or admin username.
	Subject string `json:"subject"`
	// Kind records which principal type this session belongs to.
	Kind PrincipalKind `json:"kind"`
	// Role is set for admin sessions only.
	Role Role `json:"role,omitempty"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an admin principal.
func (s Session) IsAdmin() bool { return s.Kind == KindAdmin }

// Expired reports whether the session's claim has lapsed at the given instant.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }
