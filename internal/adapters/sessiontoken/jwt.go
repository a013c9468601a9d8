package sessiontoken

// Package sessiontoken signs session claims into compact HS256 JWTs and
// verifies them back. The token is the session: nothing is persisted
// server-side, so logout is purely a cookie clear and a captured token
// stays valid until its claim expires.

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
)

var _ ports.SessionCodec = (*Codec)(nil)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrNoSecret     = errors.New("session secret must not be empty")
)

type claims struct {
	Kind domainauth.PrincipalKind `json:"kind"`
	Role domainauth.Role          `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	issuer string
}

func New(secret, issuer string) (*Codec, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Codec{secret: []byte(secret), issuer: issuer}, nil
}

// Issue signs sess into a token. A missing session ID gets a fresh UUID.
func (c *Codec) Issue(sess domainauth.Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	cl := claims{
		Kind: sess.Kind,
		Role: sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.Subject,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt.UTC()),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt.UTC()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, signing method, and issuer, and returns the
// embedded session. Expiry is deliberately not enforced here: the
// authorization gate applies its own clock so an expired claim counts as
// an absent session rather than a verification failure.
func (c *Codec) Verify(tokenString string) (domainauth.Session, error) {
	var cl claims
	token, err := jwt.ParseWithClaims(tokenString, &cl, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return domainauth.Session{}, ErrInvalidToken
	}
	if c.issuer != "" && cl.Issuer != c.issuer {
		return domainauth.Session{}, ErrInvalidToken
	}
	if cl.Kind != domainauth.KindStudent && cl.Kind != domainauth.KindAdmin {
		return domainauth.Session{}, ErrInvalidToken
	}
	if cl.ID == "" || cl.Subject == "" || cl.ExpiresAt == nil {
		return domainauth.Session{}, ErrInvalidToken
	}

	sess := domainauth.Session{
		ID:        cl.ID,
		Subject:   cl.Subject,
		Kind:      cl.Kind,
		Role:      cl.Role,
		ExpiresAt: cl.ExpiresAt.Time,
	}
	if cl.IssuedAt != nil {
		sess.IssuedAt = cl.IssuedAt.Time
	}
	return sess, nil
}
