package config

import "time"

// AuthConfig groups all session and authentication related configuration.
type AuthConfig struct {
	// SessionSecret signs session claims. Required: an unsigned session is
	// indistinguishable from a forged one.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Issuer is recorded in issued session claims and checked on verify.
	Issuer string `env:"SESSION_ISSUER" envDefault:"lms"`

	// AdminSessionTTL bounds admin sessions. Student sessions carry no
	// MaxAge on the cookie; the claim itself still expires after
	// StudentClaimTTL so a captured token does not live forever.
	AdminSessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"24h"`
	StudentClaimTTL time.Duration `env:"STUDENT_CLAIM_TTL" envDefault:"720h"`

	// TrustCachedRole controls the gate's fast path. When true the gate
	// trusts the co-issued role cookie; when false it re-resolves the role
	// from the admin record on every gated request. Role changes only take
	// effect on re-login while this is true.
	TrustCachedRole bool `env:"TRUST_CACHED_ROLE" envDefault:"true"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.AdminSessionTTL <= 0 {
		a.AdminSessionTTL = 24 * time.Hour
	}
	if a.StudentClaimTTL <= 0 {
		a.StudentClaimTTL = 720 * time.Hour
	}
}
