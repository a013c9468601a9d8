package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/crypto"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
)

// ErrInvalidCredentials is returned for every failed login, whether the
// account does not exist or the password is wrong. Callers must not be
// able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthConfig holds session lifetimes for the two principal kinds.
type AuthConfig struct {
	StudentSessionTTL time.Duration
	AdminSessionTTL   time.Duration
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Students core.StudentRepository
	Admins   core.AdminRepository
	Tokens   ports.SessionCodec
	Config   AuthConfig
}

// AuthService authenticates students and admins against their stored
// password hashes and issues signed session tokens. There is no session
// registry: the token is the session.
type AuthService struct {
	students core.StudentRepository
	admins   core.AdminRepository
	tokens   ports.SessionCodec
	cfg      AuthConfig
	hash     crypto.Argon2Params
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) (*AuthService, error) {
	if opts.Students == nil {
		return nil, errors.New("StudentRepository is required")
	}
	if opts.Admins == nil {
		return nil, errors.New("AdminRepository is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("SessionCodec is required")
	}
	cfg := opts.Config
	if cfg.StudentSessionTTL <= 0 {
		cfg.StudentSessionTTL = 720 * time.Hour
	}
	if cfg.AdminSessionTTL <= 0 {
		cfg.AdminSessionTTL = 24 * time.Hour
	}
	return &AuthService{
		students: opts.Students,
		admins:   opts.Admins,
		tokens:   opts.Tokens,
		cfg:      cfg,
		hash:     crypto.DefaultParams(),
		now:      time.Now,
	}, nil
}

// MustNewAuthService constructs a new AuthService and panics on invalid options.
func MustNewAuthService(opts AuthServiceOptions) *AuthService {
	svc, err := NewAuthService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// LoginResult carries the session and its signed token back to the
// transport layer, which sets the cookie.
type LoginResult struct {
	Session domainauth.Session
	Token   string
}

// RegisterStudent creates a student account and logs it straight in,
// so the register form lands on the dashboard like the login form does.
func (s *AuthService) RegisterStudent(ctx context.Context, req *model.CreateStudentRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(req.Password, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	student, err := s.students.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return s.issue(domainauth.Session{
		Subject: student.IndexNumber,
		Kind:    domainauth.KindStudent,
	}, s.cfg.StudentSessionTTL)
}

// AuthenticateStudent verifies a student's index number and password and
// issues a session token.
func (s *AuthService) AuthenticateStudent(ctx context.Context, indexNumber, password string) (*LoginResult, error) {
	student, err := s.students.GetByIndexNumber(ctx, indexNumber)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := crypto.VerifyPassword(password, student.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return s.issue(domainauth.Session{
		Subject: student.IndexNumber,
		Kind:    domainauth.KindStudent,
	}, s.cfg.StudentSessionTTL)
}

// AuthenticateAdmin verifies an admin's username and password and issues
// a session token carrying the admin's role.
func (s *AuthService) AuthenticateAdmin(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := crypto.VerifyPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return s.issue(domainauth.Session{
		Subject: admin.Username,
		Kind:    domainauth.KindAdmin,
		Role:    admin.Role,
	}, s.cfg.AdminSessionTTL)
}

func (s *AuthService) issue(sess domainauth.Session, ttl time.Duration) (*LoginResult, error) {
	now := s.now().UTC()
	sess.ID = uuid.NewString()
	sess.IssuedAt = now
	sess.ExpiresAt = now.Add(ttl)

	token, err := s.tokens.Issue(sess)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &LoginResult{Session: sess, Token: token}, nil
}

// VerifySession decodes a session token. Expiry is not enforced here;
// the access gate applies its own clock.
func (s *AuthService) VerifySession(token string) (domainauth.Session, error) {
	return s.tokens.Verify(token)
}
